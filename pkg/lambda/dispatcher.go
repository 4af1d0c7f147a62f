package lambda

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Dispatcher orchestrates a single dispatch cycle: route lookup, optional
// body validation, handler invocation, and error-to-response translation.
// It holds no per-invocation state, so one Dispatcher serves any number of
// concurrent invocations.
type Dispatcher struct {
	router *Router
	log    *logrus.Logger
}

// NewDispatcher creates a dispatcher over an immutable route table
func NewDispatcher(router *Router, log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{router: router, log: log}
}

// Dispatch runs one request through the full cycle and always produces a
// well-formed JSON response. Unexpected handler failures are recovered here,
// logged at error severity, and surfaced as a generic 500; no error escapes
// untranslated.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) *Response {
	route, ok := d.router.Resolve(req.Method, req.Path)
	if !ok {
		return EncodeError(NewNotFound())
	}

	var payload interface{}
	if route.Bind != nil {
		typed, derr := route.Bind(req.Body)
		if derr != nil {
			return EncodeError(derr)
		}
		payload = typed
	}

	result, err := d.invoke(ctx, route, req, payload)
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
		}).WithError(err).Error("Handler failed")
		return EncodeError(NewHandlerFailed())
	}

	resp, err := EncodeResult(result)
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
		}).WithError(err).Error("Failed to encode handler result")
		return EncodeError(NewHandlerFailed())
	}

	return resp
}

// invoke calls the handler with panic recovery, so a panicking handler is
// reported the same way as one returning an error.
func (d *Dispatcher) invoke(ctx context.Context, route *Route, req *Request, payload interface{}) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return route.Handler(ctx, req, payload)
}
