// Package service builds and persists the inflection index artifacts
package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	perr "pashtolex/internal/platform/errors"
	"pashtolex/internal/platform/logger"
	dictdom "pashtolex/internal/services/dictionary/domain"
	idxdom "pashtolex/internal/services/indexer/domain"
	morphdom "pashtolex/internal/services/morph/domain"
)

// Service runs the precompute pipeline: fetch the dictionary, generate every
// lemma's forms, build the two lookup artifacts, and persist them.
type Service struct {
	dict  dictdom.ReaderPort
	morph morphdom.Capability
	log   logger.Logger
}

// New constructs the indexer. Both dependencies are hard requirements and a
// nil one panics at wiring time.
func New(dict dictdom.ReaderPort, morph morphdom.Capability) *Service {
	if dict == nil {
		panic("indexer requires a dictionary reader")
	}
	if morph == nil {
		panic("indexer requires a morphological capability")
	}
	return &Service{dict: dict, morph: morph, log: *logger.Named("indexer")}
}

// Build generates both indexes from the cached dictionary.
//
// Entries are processed in source order. An entry without a lemma, a
// generation error, or an empty generation all skip that entry and are
// recorded in the report; none of them aborts the run. The form to lemma
// index is first writer wins: once a surface form maps to a lemma, later
// entries producing the same form only bump the collision counter. When the
// generator gives no romanization or category for a form, the first segment
// of the entry's comma separated hint fills it in, so multi form lemmas
// share one hint.
func (s *Service) Build(ctx context.Context) (*idxdom.Index, *idxdom.Report, error) {
	report := &idxdom.Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Skipped:   []idxdom.Skipped{},
	}

	entries, err := s.dict.Ensure(ctx)
	if err != nil {
		return nil, nil, err
	}
	report.Entries = len(entries)

	idx := &idxdom.Index{
		Inflections: idxdom.InflectionsIndex{},
		FormToLemma: make(map[string]string),
	}
	seenLemma := make(map[string]struct{}, len(entries))

	for _, ent := range entries {
		if !ent.Valid() {
			report.Skipped = append(report.Skipped, idxdom.Skipped{Reason: "entry has no lemma"})
			continue
		}
		if _, dup := seenLemma[ent.Lemma]; dup {
			report.Skipped = append(report.Skipped, idxdom.Skipped{Lemma: ent.Lemma, Reason: "duplicate lemma"})
			continue
		}

		raw, err := s.morph.GenerateFormsForLemma(ctx, ent.Lemma, entries)
		if err != nil {
			s.log.Warn().Str("lemma", ent.Lemma).Err(err).Msg("generation failed, skipping entry")
			report.Skipped = append(report.Skipped, idxdom.Skipped{Lemma: ent.Lemma, Reason: err.Error()})
			continue
		}
		if len(raw) == 0 {
			report.Skipped = append(report.Skipped, idxdom.Skipped{Lemma: ent.Lemma, Reason: "no forms generated"})
			continue
		}

		forms := make([]morphdom.InflectedForm, 0, len(raw))
		for _, r := range raw {
			forms = append(forms, morphdom.Realize(r, ent))
		}

		seenLemma[ent.Lemma] = struct{}{}
		idx.Inflections = append(idx.Inflections, idxdom.LemmaForms{Lemma: ent.Lemma, Forms: forms})
		report.Built++
		report.Forms += len(forms)

		s.claim(idx, report, ent.Lemma, ent.Lemma)
		for _, f := range forms {
			s.claim(idx, report, f.Form, ent.Lemma)
		}
	}

	report.Elapsed = time.Since(report.StartedAt)
	s.log.Info().
		Stringer("run_id", report.RunID).
		Int("entries", report.Entries).
		Int("built", report.Built).
		Int("skipped", len(report.Skipped)).
		Int("collisions", report.Collisions).
		Dur("elapsed", report.Elapsed).
		Msg("index build finished")
	return idx, report, nil
}

// claim records form -> lemma unless an earlier entry already owns the form
func (s *Service) claim(idx *idxdom.Index, report *idxdom.Report, form, lemma string) {
	if owner, taken := idx.FormToLemma[form]; taken {
		if owner != lemma {
			report.Collisions++
		}
		return
	}
	idx.FormToLemma[form] = lemma
}

// Persist writes both artifacts into dir. Each file lands via a temp file
// and rename in the same directory, and nothing is written until both
// payloads have marshalled, so a crash can never leave one artifact updated
// without the other being at least fully serialized beside it.
func (s *Service) Persist(idx *idxdom.Index, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return perr.Wrap(err, perr.ErrorCodePersistence, "create artifact dir")
	}

	inflections, err := json.Marshal(idx.Inflections)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodePersistence, "marshal inflections index")
	}
	formToLemma, err := json.Marshal(idx.FormToLemma)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodePersistence, "marshal form index")
	}

	if err := writeAtomic(filepath.Join(dir, idxdom.InflectionsFile), inflections); err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(dir, idxdom.FormToLemmaFile), formToLemma); err != nil {
		return err
	}
	s.log.Info().Str("dir", dir).Msg("artifacts persisted")
	return nil
}

// Run is Build followed by Persist
func (s *Service) Run(ctx context.Context, dir string) (*idxdom.Report, error) {
	idx, report, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Persist(idx, dir); err != nil {
		return nil, err
	}
	return report, nil
}

// writeAtomic writes data next to path and renames it into place
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodePersistence, "create temp artifact")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return perr.Wrap(err, perr.ErrorCodePersistence, "write temp artifact")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return perr.Wrap(err, perr.ErrorCodePersistence, "close temp artifact")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return perr.Wrap(err, perr.ErrorCodePersistence, "publish artifact")
	}
	return nil
}
