package config

import (
	"fmt"
	"os"
	"strings"
)

// FromEnv returns the value of a required key from the given source, or from
// the process environment when no source is provided. Missing or empty keys
// are a configuration error.
func FromEnv(key string, environ ...map[string]string) (string, error) {
	var value string
	var found bool
	if len(environ) != 0 && environ[0] != nil {
		value, found = environ[0][key]
	} else {
		value, found = os.LookupEnv(key)
	}

	if !found || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf(
			"config: missing required environment variable %q", key)
	}
	return value, nil
}
