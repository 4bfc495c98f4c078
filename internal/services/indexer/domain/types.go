// Package domain holds the index artifacts and the build report
package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	morphdom "pashtolex/internal/services/morph/domain"
)

// Artifact file names, kept stable because downstream search tooling loads
// them by name.
const (
	FormToLemmaFile = "form_to_lemma.json"
	InflectionsFile = "inflections_cache.json"
)

// LemmaForms pairs a lemma with its generated forms
type LemmaForms struct {
	Lemma string
	Forms []morphdom.InflectedForm
}

// InflectionsIndex maps each lemma to its forms, preserving dictionary entry
// order. It marshals as a JSON object whose keys appear in that order, which
// a plain Go map cannot do.
type InflectionsIndex []LemmaForms

// MarshalJSON writes the index as an ordered JSON object
func (x InflectionsIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, lf := range x {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(lf.Lemma)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(lf.Forms)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Index is the pair of artifacts one build produces
type Index struct {
	Inflections InflectionsIndex
	FormToLemma map[string]string
}

// Skipped records one entry the build could not process
type Skipped struct {
	Lemma  string `json:"lemma"`
	Reason string `json:"reason"`
}

// Report summarizes one index build run
type Report struct {
	RunID      uuid.UUID     `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	Elapsed    time.Duration `json:"elapsed"`
	Entries    int           `json:"entries"`
	Built      int           `json:"built"`
	Skipped    []Skipped     `json:"skipped"`
	Collisions int           `json:"collisions"`
	Forms      int           `json:"forms"`
}
