package routes

import "net/http"

// Route binds an HTTP method and a pattern, relative to its group prefix, to
// a handler. An empty Pattern matches the prefix itself.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// pattern returns the ServeMux pattern for r under prefix.
func (r Route) pattern(prefix string) string {
	return r.Method + " " + prefix + r.Pattern
}
