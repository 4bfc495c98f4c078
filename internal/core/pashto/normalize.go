// Package pashto provides script-level text utilities for Pashto
// Pipeline order for Normalize
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove format chars ZWJ ZWNJ FEFF
// 4 Fold Arabic-script yeh variants to the Pashto ye
// 5 Trim surrounding whitespace
package pashto

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldRunes maps spelling variants onto the canonical Pashto codepoints.
// The source dictionary and scripture corpus disagree on yeh forms, so
// lookups only work after both sides pass through the same fold.
var foldRunes = map[rune]rune{
	'ي': 'ی', // ARABIC YEH
	'ى': 'ی', // ALEF MAKSURA
	'ئ': 'ی', // YEH WITH HAMZA
	'ك': 'ک', // ARABIC KAF
}

func foldRune(r rune) rune {
	if to, ok := foldRunes[r]; ok {
		return to
	}
	return r
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			runes.Map(foldRune),
		)
	},
}

// Normalize returns the normalized form of s following the pipeline described above
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-4 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}

	// 5 trim
	return strings.TrimSpace(ns)
}

// Equal reports whether two strings are the same word after normalization
func Equal(a, b string) bool { return Normalize(a) == Normalize(b) }
