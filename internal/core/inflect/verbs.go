package inflect

import (
	"strings"

	"pashtolex/internal/core/pashto"
)

// ending pairs a script suffix with its romanized counterpart.
type ending struct {
	Person string
	PS     string
	Rom    string
}

// presentEndings agree with the subject and serve both the present tense and
// the subjunctive (which only swaps the stem).
var presentEndings = []ending{
	{"1sg", "م", "um"},
	{"2sg", "ې", "e"},
	{"3sg", "ي", "ee"},
	{"1pl", "و", "oo"},
	{"2pl", "ئ", "ey"},
	{"3pl", "ي", "ee"},
}

// pastEndings agree with the object of a transitive verb; the third person
// singular distinguishes gender and the third plural is the bare root.
var pastEndings = []ending{
	{"1sg", "م", "um"},
	{"2sg", "ې", "e"},
	{"3sg masc.", "و", "o"},
	{"3sg fem.", "ه", "a"},
	{"1pl", "و", "oo"},
	{"2pl", "ئ", "ey"},
	{"3pl", "", ""},
}

// isVerb reports whether lemma should conjugate rather than decline. The
// dictionary category hint wins when present; otherwise only a lexicon hit
// or a bare infinitive shape in ـل qualifies.
func isVerb(lemma, hint string) bool {
	if _, ok := verbLexicon[lemma]; ok {
		return true
	}
	if hint != "" {
		return strings.HasPrefix(hint, "v")
	}
	return strings.HasSuffix(lemma, "ل")
}

// principalParts returns the verb entry for lemma, deriving the regular
// weak-verb parts when the lexicon has no override.
func principalParts(lemma string) verbEntry {
	if v, ok := verbLexicon[lemma]; ok {
		return v
	}
	stem := strings.TrimSuffix(lemma, "ل")
	v := verbEntry{
		ImpfStem: stem, PerfStem: "و" + stem,
		ImpfRoot: lemma, PerfRoot: "و" + lemma,
		Participle: lemma + "ی",
	}
	v.Rom = verbRom{
		ImpfStem:   pashto.Transliterate(v.ImpfStem),
		PerfStem:   pashto.Transliterate(v.PerfStem),
		ImpfRoot:   pashto.Transliterate(v.ImpfRoot),
		PerfRoot:   pashto.Transliterate(v.PerfRoot),
		Participle: pashto.Transliterate(v.Participle),
	}
	return v
}

// conjugate generates every surface form of a verb lemma: the four tense
// paradigms plus the roots and the past participle.
func conjugate(lemma string) []slot {
	v := principalParts(lemma)

	out := make([]slot, 0, 4*len(presentEndings)+3)
	out = append(out,
		slot{Form: v.ImpfRoot, Rom: v.Rom.ImpfRoot, Desc: "imperfective root"},
		slot{Form: v.PerfRoot, Rom: v.Rom.PerfRoot, Desc: "perfective root"},
		slot{Form: v.Participle, Rom: v.Rom.Participle, Desc: "past participle"},
	)
	out = appendParadigm(out, "present", v.ImpfStem, v.Rom.ImpfStem, presentEndings)
	out = appendParadigm(out, "subjunctive", v.PerfStem, v.Rom.PerfStem, presentEndings)
	out = appendParadigm(out, "continuous past", v.ImpfRoot, v.Rom.ImpfRoot, pastEndings)
	out = appendParadigm(out, "simple past", v.PerfRoot, v.Rom.PerfRoot, pastEndings)
	return dedupe(out)
}

func appendParadigm(out []slot, tense, stemPS, stemRom string, endings []ending) []slot {
	for _, e := range endings {
		out = append(out, slot{
			Form: stemPS + e.PS,
			Rom:  stemRom + e.Rom,
			Desc: tense + " " + e.Person,
		})
	}
	return out
}
