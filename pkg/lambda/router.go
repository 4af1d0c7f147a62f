package lambda

import "strings"

// Route binds an HTTP method and path to a handler. Routes that expect a
// typed body declare a BindFunc; the dispatcher runs it before invoking the
// handler.
type Route struct {
	Method  string
	Path    string
	Handler HandlerFunc
	Bind    BindFunc
}

type routeKey struct {
	method string
	path   string
}

// Router resolves requests against an exact-match (method, path) table.
// The table is built once at startup and never mutated, so lookups are safe
// to call concurrently without synchronization.
type Router struct {
	routes map[routeKey]Route
}

// NewRouter builds an immutable router from the given route table.
// Route methods are normalized to uppercase.
func NewRouter(routes []Route) *Router {
	table := make(map[routeKey]Route, len(routes))
	for _, route := range routes {
		route.Method = strings.ToUpper(route.Method)
		table[routeKey{method: route.Method, path: route.Path}] = route
	}
	return &Router{routes: table}
}

// Resolve returns the route matching method+path, or false when no route
// matches. Matching is exact; the decoded request method is already
// normalized to uppercase.
func (r *Router) Resolve(method, path string) (*Route, bool) {
	route, ok := r.routes[routeKey{method: method, path: path}]
	if !ok {
		return nil, false
	}
	return &route, true
}
