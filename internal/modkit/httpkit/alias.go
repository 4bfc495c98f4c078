// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "pashtolex/internal/platform/net/http"
)

type (
	// FailEnvelope is the transport failure envelope type
	FailEnvelope = phttp.FailEnvelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response carrying the DTO verbatim
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and failure envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// Call adapts a handler that takes no bound input
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.CallHandler(fn)
}
