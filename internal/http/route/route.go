package route

import (
	"fmt"
	"strconv"

	"lightswitch.app/internal/http/mux"
)

// Path returns the defined route based on given arguments.
func Path(m *mux.ServeMux, name string, args ...any) string {
	pairs := make([]string, len(args))
	for i, arg := range args {
		switch param := arg.(type) {
		case string:
			pairs[i] = param
		case int:
			pairs[i] = strconv.Itoa(param)
		case int64:
			pairs[i] = strconv.FormatInt(param, 10)
		default:
			pairs[i] = fmt.Sprint(param)
		}
	}

	result := m.NamedPath(name, pairs...)
	if result == "" {
		panic("route not found: " + name)
	}
	return result
}
