// Package http provides the lookup endpoints
package http

import (
	"net/http"

	"pashtolex/internal/modkit/httpkit"
	dom "pashtolex/internal/services/lookup/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Reader dom.ReaderPort
}

type handlers struct {
	deps Deps
}

// analyzeParams binds GET /analyze
type analyzeParams struct {
	Form string `query:"form" validate:"required"`
}

// conjugateParams binds GET /conjugate
type conjugateParams struct {
	Lemma string `query:"lemma" validate:"required"`
}

// Register mounts the lookup routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.GetQuery(r, "/analyze", h.analyze)
	httpkit.GetQuery(r, "/conjugate", h.conjugate)
}

func (h *handlers) analyze(r *http.Request, p analyzeParams) (any, error) {
	return h.deps.Reader.Analyze(r.Context(), p.Form)
}

func (h *handlers) conjugate(r *http.Request, p conjugateParams) (any, error) {
	return h.deps.Reader.Conjugate(r.Context(), p.Lemma)
}
