// Package service implements the lookup operations over the dictionary cache
// and the morphology engine
package service

import (
	"context"
	"strings"

	perr "pashtolex/internal/platform/errors"
	"pashtolex/internal/platform/logger"
	dictdom "pashtolex/internal/services/dictionary/domain"
	dom "pashtolex/internal/services/lookup/domain"
	morphdom "pashtolex/internal/services/morph/domain"
)

// Service implements domain.ReaderPort
type Service struct {
	dict  dictdom.ReaderPort
	morph morphdom.Capability
	log   logger.Logger
}

// New constructs the lookup service. Both dependencies are hard requirements
// and a nil one panics at wiring time.
func New(dict dictdom.ReaderPort, morph morphdom.Capability) *Service {
	if dict == nil {
		panic("lookup service requires a dictionary reader")
	}
	if morph == nil {
		panic("lookup service requires a morphological capability")
	}
	return &Service{dict: dict, morph: morph, log: *logger.Named("lookup")}
}

// Analyze resolves a surface form to its lemma and readings. Input is
// validated before the dictionary loads, so bad requests never trigger a
// fetch. Dictionary or engine failure surfaces as an upstream error
// carrying the cause.
func (s *Service) Analyze(ctx context.Context, form string) (dom.AnalyzeResponse, error) {
	form = strings.TrimSpace(form)
	if form == "" {
		return dom.AnalyzeResponse{}, perr.WithField(perr.InvalidRequestf("form must not be empty"), "form")
	}

	entries, err := s.dict.Ensure(ctx)
	if err != nil {
		return dom.AnalyzeResponse{}, perr.Upstream(err, "load dictionary")
	}

	res, err := s.morph.AnalyzeForm(ctx, form, entries)
	if err != nil {
		return dom.AnalyzeResponse{}, perr.Upstream(err, "analyze form")
	}
	if res.Possibilities == nil {
		res.Possibilities = []morphdom.Analysis{}
	}
	return dom.AnalyzeResponse{OK: true, Lemma: res.Lemma, Possibilities: res.Possibilities}, nil
}

// Conjugate generates the inflected forms of a lemma. An empty result is a
// success; the engine simply has no rule for the word.
func (s *Service) Conjugate(ctx context.Context, lemma string) (dom.ConjugateResponse, error) {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" {
		return dom.ConjugateResponse{}, perr.WithField(perr.InvalidRequestf("lemma must not be empty"), "lemma")
	}

	entries, err := s.dict.Ensure(ctx)
	if err != nil {
		return dom.ConjugateResponse{}, perr.Upstream(err, "load dictionary")
	}

	raw, err := s.morph.GenerateFormsForLemma(ctx, lemma, entries)
	if err != nil {
		return dom.ConjugateResponse{}, perr.Upstream(err, "generate forms")
	}

	ent := entryFor(lemma, entries)
	forms := make([]morphdom.InflectedForm, 0, len(raw))
	for _, r := range raw {
		forms = append(forms, morphdom.Realize(r, ent))
	}
	return dom.ConjugateResponse{OK: true, Lemma: lemma, Forms: forms}, nil
}

// entryFor finds the dictionary entry for lemma; a zero entry means no hints
func entryFor(lemma string, entries []dictdom.Entry) dictdom.Entry {
	for _, e := range entries {
		if e.Lemma == lemma {
			return e
		}
	}
	return dictdom.Entry{Lemma: lemma}
}
