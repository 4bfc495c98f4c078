// Package domain holds the lookup service contract
package domain

import (
	"context"

	morphdom "pashtolex/internal/services/morph/domain"
)

// AnalyzeResponse is the analysis payload. Lemma is null when the form is
// unknown, which is a successful answer.
type AnalyzeResponse struct {
	OK            bool                `json:"ok"`
	Lemma         *string             `json:"lemma"`
	Possibilities []morphdom.Analysis `json:"possibilities"`
}

// ConjugateResponse is the conjugation payload. Forms may be empty for a
// lemma the engine cannot handle; that too is a successful answer.
type ConjugateResponse struct {
	OK    bool                     `json:"ok"`
	Lemma string                   `json:"lemma"`
	Forms []morphdom.InflectedForm `json:"forms"`
}

// ReaderPort is the lookup surface consumed by the HTTP layer
type ReaderPort interface {
	Analyze(ctx context.Context, form string) (AnalyzeResponse, error)
	Conjugate(ctx context.Context, lemma string) (ConjugateResponse, error)
}
