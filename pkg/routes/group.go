// Package routes declares HTTP route groups and registers them on a ServeMux.
package routes

import "net/http"

// Group organizes routes under a common prefix. Middleware wraps every route
// in the group and its children, outermost first.
type Group struct {
	Prefix     string
	Middleware []func(http.Handler) http.Handler
	Routes     []Route
	Children   []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", nil, group)
	}
}

func registerGroup(
	mux *http.ServeMux,
	parentPrefix string,
	parentMiddleware []func(http.Handler) http.Handler,
	group Group,
) {
	fullPrefix := parentPrefix + group.Prefix
	stack := append(append([]func(http.Handler) http.Handler{}, parentMiddleware...), group.Middleware...)

	for _, route := range group.Routes {
		mux.Handle(route.pattern(fullPrefix), wrap(route.Handler, stack))
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, stack, child)
	}
}

func wrap(handler http.Handler, stack []func(http.Handler) http.Handler) http.Handler {
	for i := len(stack) - 1; i >= 0; i-- {
		handler = stack[i](handler)
	}
	return handler
}
