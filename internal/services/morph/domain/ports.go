package domain

import (
	"context"

	dictdom "pashtolex/internal/services/dictionary/domain"
)

// Capability is the morphological engine consumed by the index builder and
// the lookup service. Both methods are opaque and possibly partial: an error
// or an empty result for a given lemma means "not handled", and the batch
// pipeline treats the two identically.
type Capability interface {
	// GenerateFormsForLemma produces every inflected surface form of lemma.
	// An empty slice is a valid answer for lemmas the engine cannot handle.
	GenerateFormsForLemma(ctx context.Context, lemma string, entries []dictdom.Entry) ([]RawForm, error)

	// AnalyzeForm identifies the lemma behind a surface form. A result with a
	// nil lemma and no possibilities is a normal "unknown word" answer.
	AnalyzeForm(ctx context.Context, form string, entries []dictdom.Entry) (AnalyzeResult, error)
}
