// Package inflect is a rule based Pashto morphology engine. It generates
// inflected surface forms for dictionary lemmas and resolves surface forms
// back to lemmas. The rules are an approximation: real Pashto morphology is
// stress and gender sensitive in ways a category hint cannot fully capture.
package inflect

import (
	"context"
	"strings"

	"pashtolex/internal/core/pashto"
	dictdom "pashtolex/internal/services/dictionary/domain"
	morphdom "pashtolex/internal/services/morph/domain"
)

// slot is one generated surface form with its grammatical description.
// Romanization may be empty when only the script form can be derived.
type slot struct {
	Form string
	Rom  string
	Desc string
}

// Engine implements the morphological capability consumed by the index
// builder and the lookup service.
type Engine struct{}

// New constructs an Engine
func New() *Engine { return &Engine{} }

// GenerateFormsForLemma produces the inflected forms of lemma. Lemmas whose
// shape matches no rule yield an empty slice, which callers treat as
// "not handled" rather than an error.
func (e *Engine) GenerateFormsForLemma(ctx context.Context, lemma string, entries []dictdom.Entry) ([]morphdom.RawForm, error) {
	slots := e.expand(lemma, findEntry(lemma, entries))
	out := make([]morphdom.RawForm, 0, len(slots))
	for _, s := range slots {
		out = append(out, morphdom.RawForm{Form: s.Form, Romanization: s.Rom})
	}
	return out, nil
}

// AnalyzeForm resolves a surface form to its lemma by regenerating the forms
// of every entry and comparing under script normalization. A result with a
// nil lemma and no possibilities is the normal "unknown word" answer.
func (e *Engine) AnalyzeForm(ctx context.Context, form string, entries []dictdom.Entry) (morphdom.AnalyzeResult, error) {
	want := pashto.Normalize(form)
	if want == "" {
		return morphdom.AnalyzeResult{Possibilities: []morphdom.Analysis{}}, nil
	}

	var res morphdom.AnalyzeResult
	res.Possibilities = []morphdom.Analysis{}
	for _, ent := range entries {
		if ent.Lemma == "" {
			continue
		}
		if pashto.Normalize(ent.Lemma) == want {
			res.Possibilities = append(res.Possibilities, morphdom.Analysis{
				Lemma:       ent.Lemma,
				Form:        ent.Lemma,
				Category:    ent.CategoryHint,
				Description: "dictionary form",
			})
			continue
		}
		for _, s := range e.expand(ent.Lemma, &ent) {
			if pashto.Normalize(s.Form) != want {
				continue
			}
			res.Possibilities = append(res.Possibilities, morphdom.Analysis{
				Lemma:        ent.Lemma,
				Form:         s.Form,
				Romanization: s.Rom,
				Category:     ent.CategoryHint,
				Description:  s.Desc,
			})
			break
		}
	}
	if len(res.Possibilities) > 0 {
		res.Lemma = &res.Possibilities[0].Lemma
	}
	return res, nil
}

// expand dispatches a lemma to the verb or noun rules based on the built-in
// lexicon and the entry's category hint.
func (e *Engine) expand(lemma string, ent *dictdom.Entry) []slot {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" {
		return nil
	}
	hint := ""
	if ent != nil {
		hint = strings.TrimSpace(ent.CategoryHint)
	}
	if isVerb(lemma, hint) {
		return conjugate(lemma)
	}
	return declineNoun(lemma, hint)
}

// findEntry locates the dictionary entry owning lemma, comparing under
// normalization so spelling variants still match.
func findEntry(lemma string, entries []dictdom.Entry) *dictdom.Entry {
	want := pashto.Normalize(lemma)
	for i := range entries {
		if pashto.Normalize(entries[i].Lemma) == want {
			return &entries[i]
		}
	}
	return nil
}

// dedupe keeps the first occurrence of each surface form. Several noun slots
// share a form (vocative and first inflection are often identical) and the
// generated list should not repeat them.
func dedupe(in []slot) []slot {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s.Form]; ok {
			continue
		}
		seen[s.Form] = struct{}{}
		out = append(out, s)
	}
	return out
}
