package inflect

import "strings"

// Noun and adjective declension patterns. Slot names follow the usual
// pedagogical numbering: first inflection covers the oblique singular and the
// plain plural, second inflection is the universal ـو ending.

// nounPattern identifies one declension class.
type nounPattern int

const (
	patternBasic nounPattern = iota
	patternUnstressedY
	patternStressedAy
	patternPashtoon
	patternSquish
	patternFemInanimEe
)

// nounOverrides pins lemmas whose class cannot be read off the final letter.
// Keys use the canonical Pashto ye.
var nounOverrides = map[string]nounPattern{
	"پښتون": patternPashtoon,
	"شپون":  patternPashtoon,
	"سپی":   patternStressedAy, // stressed ay, fem سپۍ
	"لمونځ": patternSquish,
}

// classifyNoun infers the declension class from the lemma shape. The hint is
// the dictionary category string, eg "n. m." or "n. f.".
func classifyNoun(lemma, hint string) nounPattern {
	if p, ok := nounOverrides[lemma]; ok {
		return p
	}
	switch {
	case strings.HasSuffix(lemma, "ۍ"):
		return patternStressedAy
	case strings.HasSuffix(lemma, "ي") && strings.Contains(hint, "f"):
		return patternFemInanimEe
	case strings.HasSuffix(lemma, "ی"):
		return patternUnstressedY
	default:
		return patternBasic
	}
}

// declineNoun generates the surface forms of a noun or adjective lemma.
func declineNoun(lemma, hint string) []slot {
	switch classifyNoun(lemma, hint) {
	case patternPashtoon:
		return declinePashtoon(lemma)
	case patternUnstressedY:
		return declineUnstressedY(lemma)
	case patternStressedAy:
		return declineStressedAy(lemma)
	case patternSquish:
		return declineSquish(lemma)
	case patternFemInanimEe:
		return declineFemInanimEe(lemma)
	default:
		return declineBasic(lemma)
	}
}

// declineBasic handles pattern 1. Feminine lemmas end in ـه; the rest are
// treated as masculine consonant stems with the ـونه plural.
func declineBasic(lemma string) []slot {
	if strings.HasSuffix(lemma, "ه") {
		base := strings.TrimSuffix(lemma, "ه")
		return dedupe([]slot{
			{Form: lemma, Desc: "plain (fem.)"},
			{Form: base + "ې", Desc: "first inflection (fem.)"},
			{Form: base + "و", Desc: "second inflection (fem.)"},
		})
	}
	return dedupe([]slot{
		{Form: lemma, Desc: "plain (masc.)"},
		{Form: lemma + "ونه", Desc: "plural (masc.)"},
		{Form: lemma + "ونو", Desc: "plural oblique (masc.)"},
		{Form: lemma + "و", Desc: "second inflection (masc.)"},
	})
}

// declineUnstressedY handles pattern 2, lemmas in unstressed ـی.
func declineUnstressedY(lemma string) []slot {
	stem := strings.TrimSuffix(lemma, "ی")
	return dedupe([]slot{
		{Form: stem + "ی", Desc: "plain (masc.)"},
		{Form: stem + "ې", Desc: "plain (fem.)"},
		{Form: stem + "ي", Desc: "first inflection (masc.)"},
		{Form: stem + "یو", Desc: "second inflection"},
	})
}

// declineStressedAy handles pattern 3, lemmas in stressed ـی (fem. ـۍ).
// A lemma already ending in ـۍ is treated as the feminine of this class.
func declineStressedAy(lemma string) []slot {
	stem := strings.TrimSuffix(strings.TrimSuffix(lemma, "ی"), "ۍ")
	return dedupe([]slot{
		{Form: stem + "ی", Desc: "plain (masc.)"},
		{Form: stem + "ۍ", Desc: "plain (fem.)"},
		{Form: stem + "ي", Desc: "first inflection (masc.)"},
		{Form: stem + "یو", Desc: "second inflection"},
	})
}

// declinePashtoon handles pattern 4, animate nouns like پښتون whose plural
// ablauts to ـانه and whose feminine squishes the ـون.
func declinePashtoon(stem string) []slot {
	femBase := stem + "ه"
	infl1 := stem + "انه"
	infl2 := stem + "نو"
	if strings.HasSuffix(stem, "ون") {
		base := strings.TrimSuffix(stem, "ون")
		femBase = base + "نه"
		infl1 = base + "انه"
		infl2 = base + "نو"
	}
	return dedupe([]slot{
		{Form: stem, Desc: "plain (masc.)"},
		{Form: femBase, Desc: "plain (fem.)"},
		{Form: infl1, Desc: "first inflection (masc.)"},
		{Form: strings.TrimSuffix(femBase, "ه") + "ې", Desc: "first inflection (fem.)"},
		{Form: infl2, Desc: "second inflection"},
		{Form: stem + "ه", Desc: "vocative (masc.)"},
	})
}

// declineSquish handles pattern 5, short a-stems whose inflections reuse the
// bare stem plus vowel endings.
func declineSquish(stem string) []slot {
	return dedupe([]slot{
		{Form: stem, Desc: "plain (masc.)"},
		{Form: stem + "ه", Desc: "first inflection (masc.)"},
		{Form: stem + "ې", Desc: "first inflection (fem.)"},
		{Form: stem + "و", Desc: "second inflection"},
	})
}

// declineFemInanimEe handles inanimate feminine nouns in ـي.
func declineFemInanimEe(lemma string) []slot {
	stem := strings.TrimSuffix(strings.TrimSuffix(lemma, "ي"), "ی")
	return dedupe([]slot{
		{Form: stem + "ي", Desc: "plain (fem.)"},
		{Form: stem + "ۍ", Desc: "first inflection (fem.)"},
		{Form: stem + "یو", Desc: "second inflection (fem.)"},
	})
}
