package http

import (
	"net/http"

	"pashtolex/internal/platform/net/http/bind"
)

// QueryHandler binds query parameters into T, validates them, and adapts a
// pure handler to a platform Handler. The lookup endpoints are GETs with
// query parameters, so this is the workhorse adapter.
func QueryHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.Query[T](r)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// CallHandler calls fn without binding anything and wraps the result
func CallHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
