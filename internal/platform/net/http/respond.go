// Package http provides helpers for writing JSON responses with an explicit
// success flag on every body
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "pashtolex/internal/platform/errors"
	pnet "pashtolex/internal/platform/net"
)

// FailEnvelope is the body written for every failed request. Success bodies
// are the handler's own DTO and must carry their own `ok:true` flag, so
// callers can always distinguish "no results" from "failed to compute".
type FailEnvelope struct {
	OK        bool           `json:"ok"`
	Code      perr.ErrorCode `json:"code,omitempty"`
	Error     string         `json:"error,omitempty"`
	Field     string         `json:"field,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// RespondOK writes the DTO verbatim with a 200
func RespondOK(w stdhttp.ResponseWriter, _ *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, data)
}

// RespondError maps a project error into a failure envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := perr.HTTP(err)
	JSON(w, status, FailEnvelope{
		OK:        false,
		Code:      wire.Code,
		Error:     wire.Message,
		Field:     wire.Field,
		RequestID: pnet.RequestID(r.Context()),
	})
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	// if Body is an error, derive status from the error and write the
	// failure envelope
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	JSON(w, status, resp.Body)
}

// OK returns a 200 response carrying the DTO verbatim
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and failure envelope
func Error(err error) Response { return Response{Body: err} }
