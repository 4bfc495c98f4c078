package httpkit

import (
	"net/http"

	phttp "pashtolex/internal/platform/net/http"
)

// GetQuery mounts a handler under GET whose input is bound and validated from
// the query string
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, phttp.QueryHandler(h))
}

// Get registers a no-input handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
