package lambda

import "context"

// Request represents a generic HTTP request decoded from a gateway event
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler. The payload argument carries
// the typed body produced by the route's BindFunc, or nil for routes that
// declare none.
type HandlerFunc func(ctx context.Context, req *Request, payload interface{}) (interface{}, error)

// BindFunc validates and deserializes a raw request body into a typed value.
type BindFunc func(raw []byte) (interface{}, *DispatchError)
