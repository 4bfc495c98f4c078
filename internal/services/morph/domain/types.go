// Package domain holds the morphological capability contract and the shared
// inflected-form model
package domain

import (
	dictdom "pashtolex/internal/services/dictionary/domain"
	pstrings "pashtolex/internal/platform/strings"
)

// RawForm is one surface realization as produced by the capability.
// Romanization and category may be empty when the capability does not know
// them; consumers fall back to the owning entry's hints.
type RawForm struct {
	Form         string `json:"form"`
	Romanization string `json:"romanization,omitempty"`
	Category     string `json:"category,omitempty"`
}

// InflectedForm is a fully derived surface form as persisted and served.
type InflectedForm struct {
	Form         string `json:"form"`
	Romanization string `json:"romanization"`
	Category     string `json:"category"`
}

// Analysis is one possible reading of a surface form.
type Analysis struct {
	Lemma        string `json:"lemma"`
	Form         string `json:"form"`
	Romanization string `json:"romanization,omitempty"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
}

// AnalyzeResult is the outcome of analyzing a surface form. A nil Lemma with
// empty Possibilities means "no analysis found" and is a normal result, not
// an error.
type AnalyzeResult struct {
	Lemma         *string    `json:"lemma"`
	Possibilities []Analysis `json:"possibilities"`
}

// Realize derives the final InflectedForm for raw produced from entry e.
// The capability's own romanization/category win; otherwise the first
// comma-separated segment of the entry's hint is used. For multi-form lemmas
// every form then inherits the entry's single hint, which is a known
// approximation inherited from the source data.
func Realize(raw RawForm, e dictdom.Entry) InflectedForm {
	rom := raw.Romanization
	if rom == "" {
		rom = pstrings.FirstSegment(e.RomanizationHint)
	}
	cat := raw.Category
	if cat == "" {
		cat = pstrings.FirstSegment(e.CategoryHint)
	}
	return InflectedForm{Form: raw.Form, Romanization: rom, Category: cat}
}
