// Package mux wraps the standard ServeMux with middleware chains, route
// groups and named routes.
package mux

import (
	"net/http"
	"path"
	"slices"
	"strings"
)

func New() *ServeMux {
	return &ServeMux{
		ServeMux:      http.NewServeMux(),
		namedPatterns: make(map[string]string),
	}
}

type ServeMux struct {
	*http.ServeMux

	middlewares   []MiddlewareFunc
	namedPatterns map[string]string
	pathPrefix    string
}

type MiddlewareFunc func(next http.Handler) http.Handler

var _ http.Handler = (*ServeMux)(nil)

// Group returns a copy of the mux whose middleware chain can grow without
// affecting the parent.
func (self *ServeMux) Group(funcs ...func(m *ServeMux)) *ServeMux {
	g := *self
	g.middlewares = slices.Clone(self.middlewares)
	for _, fn := range funcs {
		fn(&g)
	}
	return &g
}

// PrefixGroup nests a fresh ServeMux under prefix, stripping the prefix
// before dispatch. Named routes registered inside still resolve to the full
// path.
func (self *ServeMux) PrefixGroup(prefix string, funcs ...func(m *ServeMux),
) *ServeMux {
	if prefix == "" {
		return self.Group(funcs...)
	}

	pattern := prefix
	if !strings.HasSuffix(pattern, "/") {
		pattern += "/"
	}
	nested := http.NewServeMux()
	self.Handle(pattern, http.StripPrefix(prefix, nested))

	g := *self
	g.ServeMux = nested
	g.middlewares = nil
	g.pathPrefix = path.Join(self.pathPrefix, prefix)

	for _, fn := range funcs {
		fn(&g)
	}
	return &g
}

func (self *ServeMux) Use(m ...MiddlewareFunc) *ServeMux {
	self.middlewares = append(self.middlewares, m...)
	return self
}

func (self *ServeMux) Handle(pattern string, handler http.Handler) *ServeMux {
	self.ServeMux.Handle(pattern, self.wrapped(handler))
	return self
}

func (self *ServeMux) HandleFunc(pattern string,
	handler func(http.ResponseWriter, *http.Request),
) *ServeMux {
	return self.Handle(pattern, http.HandlerFunc(handler))
}

func (self *ServeMux) wrapped(handler http.Handler) http.Handler {
	for _, m := range slices.Backward(self.middlewares) {
		handler = m(handler)
	}
	return handler
}

// NameHandle registers handler and remembers its pattern under name for
// reverse lookups with NamedPath.
func (self *ServeMux) NameHandle(pattern string, handler http.Handler,
	name string,
) *ServeMux {
	self.namedPatterns[name] = self.joinPathPrefix(pattern)
	return self.Handle(pattern, handler)
}

func (self *ServeMux) NameHandleFunc(pattern string,
	handler func(http.ResponseWriter, *http.Request), name string,
) *ServeMux {
	return self.NameHandle(pattern, http.HandlerFunc(handler), name)
}

func (self *ServeMux) joinPathPrefix(pattern string) string {
	pattern = strings.TrimSuffix(removeMethod(pattern), "{$}")
	if self.pathPrefix == "" {
		return pattern
	}

	prefixed := path.Join(self.pathPrefix, pattern)
	if strings.HasSuffix(pattern, "/") && !strings.HasSuffix(prefixed, "/") {
		return prefixed + "/"
	}
	return prefixed
}

func removeMethod(pattern string) string {
	before, after, found := strings.Cut(pattern, " ")
	if !found {
		return before
	}
	return strings.TrimLeft(after, " ")
}

// NamedPath returns the pattern registered under name, with wildcard
// segments replaced by the given key/value pairs.
func (self *ServeMux) NamedPath(name string, pairs ...string) string {
	pattern, ok := self.namedPatterns[name]
	if !ok {
		return ""
	} else if len(pairs) < 2 {
		return pattern
	}

	for i := 0; i+1 < len(pairs); i += 2 {
		pattern = strings.Replace(pattern, "{"+pairs[i]+"}", pairs[i+1], 1)
	}
	return pattern
}
