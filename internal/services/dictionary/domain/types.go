// Package domain holds the dictionary entry model and the ports other
// services consume it through
package domain

import "strings"

// Entry is one vocabulary item as served by the remote dictionary. The wire
// names follow the LingDocs dump: p is the Pashto citation form, f a
// comma-separated romanization hint, c a comma-separated category hint.
type Entry struct {
	Lemma            string `json:"p"`
	RomanizationHint string `json:"f,omitempty"`
	CategoryHint     string `json:"c,omitempty"`
}

// Valid reports whether the entry carries a lemma. Entries without one are
// excluded from all processing.
func (e Entry) Valid() bool { return strings.TrimSpace(e.Lemma) != "" }
