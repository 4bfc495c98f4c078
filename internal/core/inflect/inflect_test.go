package inflect

import (
	"context"
	"testing"

	dictdom "pashtolex/internal/services/dictionary/domain"
)

func forms(t *testing.T, e *Engine, lemma string, entries []dictdom.Entry) map[string]bool {
	t.Helper()

	raw, err := e.GenerateFormsForLemma(context.Background(), lemma, entries)
	if err != nil {
		t.Fatalf("GenerateFormsForLemma(%q): %v", lemma, err)
	}
	got := make(map[string]bool, len(raw))
	for _, r := range raw {
		if got[r.Form] {
			t.Errorf("duplicate form %q for %q", r.Form, lemma)
		}
		got[r.Form] = true
	}
	return got
}

func TestGenerate_BasicMasculineNoun(t *testing.T) {
	t.Parallel()

	entries := []dictdom.Entry{{Lemma: "کور", RomanizationHint: "kor", CategoryHint: "n. m."}}
	got := forms(t, New(), "کور", entries)

	for _, want := range []string{"کور", "کورونه", "کورونو", "کورو"} {
		if !got[want] {
			t.Errorf("missing form %q, have %v", want, got)
		}
	}
}

func TestGenerate_BasicFeminineNoun(t *testing.T) {
	t.Parallel()

	got := forms(t, New(), "اسپه", []dictdom.Entry{{Lemma: "اسپه", CategoryHint: "n. f."}})
	for _, want := range []string{"اسپه", "اسپې", "اسپو"} {
		if !got[want] {
			t.Errorf("missing form %q, have %v", want, got)
		}
	}
}

func TestGenerate_UnstressedY(t *testing.T) {
	t.Parallel()

	got := forms(t, New(), "ستړی", []dictdom.Entry{{Lemma: "ستړی", CategoryHint: "adj."}})
	for _, want := range []string{"ستړی", "ستړې", "ستړي", "ستړیو"} {
		if !got[want] {
			t.Errorf("missing form %q, have %v", want, got)
		}
	}
}

func TestGenerate_PashtoonOverride(t *testing.T) {
	t.Parallel()

	got := forms(t, New(), "پښتون", []dictdom.Entry{{Lemma: "پښتون", CategoryHint: "n. m. anim."}})
	for _, want := range []string{"پښتون", "پښتنه", "پښتانه", "پښتنې", "پښتنو", "پښتونه"} {
		if !got[want] {
			t.Errorf("missing form %q, have %v", want, got)
		}
	}
}

func TestGenerate_LexiconVerb(t *testing.T) {
	t.Parallel()

	got := forms(t, New(), "لیدل", []dictdom.Entry{{Lemma: "لیدل", CategoryHint: "v. trans."}})
	for _, want := range []string{
		"لیدل", "ولیدل", "لیدلی", // roots and participle
		"وینم", "وینې", "ویني", // present
		"ووینم",          // subjunctive
		"لیدله", "لیدلو", // continuous past 3sg f / 3sg m
		"ولیدله", "ولیدلو", // simple past
	} {
		if !got[want] {
			t.Errorf("missing form %q", want)
		}
	}
}

func TestGenerate_RegularVerbDerived(t *testing.T) {
	t.Parallel()

	// not in the lexicon; parts derive from the infinitive shape
	got := forms(t, New(), "څښل", []dictdom.Entry{{Lemma: "څښل", CategoryHint: "v. trans."}})
	for _, want := range []string{"څښل", "وڅښل", "څښلی", "څښم", "وڅښم"} {
		if !got[want] {
			t.Errorf("missing form %q, have %v", want, got)
		}
	}
}

func TestGenerate_VerbRomanizationFollowsStem(t *testing.T) {
	t.Parallel()

	raw, err := New().GenerateFormsForLemma(context.Background(), "لیدل", nil)
	if err != nil {
		t.Fatal(err)
	}
	romOf := func(form string) string {
		for _, r := range raw {
			if r.Form == form {
				return r.Romanization
			}
		}
		t.Fatalf("form %q not generated", form)
		return ""
	}
	if got := romOf("وینم"); got != "weenum" {
		t.Errorf("وینم romanized %q, want weenum", got)
	}
	if got := romOf("لیدلی"); got != "leedúlay" {
		t.Errorf("لیدلی romanized %q, want leedúlay", got)
	}
}

func TestAnalyze_InflectedNounForm(t *testing.T) {
	t.Parallel()

	entries := []dictdom.Entry{
		{Lemma: "کار", CategoryHint: "n. m."},
		{Lemma: "کور", RomanizationHint: "kor", CategoryHint: "n. m."},
	}
	res, err := New().AnalyzeForm(context.Background(), "کورونه", entries)
	if err != nil {
		t.Fatal(err)
	}
	if res.Lemma == nil || *res.Lemma != "کور" {
		t.Fatalf("lemma = %v, want کور", res.Lemma)
	}
	if len(res.Possibilities) != 1 {
		t.Fatalf("possibilities = %+v", res.Possibilities)
	}
	if res.Possibilities[0].Description != "plural (masc.)" {
		t.Errorf("description = %q", res.Possibilities[0].Description)
	}
}

func TestAnalyze_NormalizesYehVariants(t *testing.T) {
	t.Parallel()

	entries := []dictdom.Entry{{Lemma: "سړی", CategoryHint: "n. m."}}

	// arabic yeh spelling of the first inflection
	res, err := New().AnalyzeForm(context.Background(), "سړي", entries)
	if err != nil {
		t.Fatal(err)
	}
	if res.Lemma == nil || *res.Lemma != "سړی" {
		t.Fatalf("lemma = %v, want سړی", res.Lemma)
	}
}

func TestAnalyze_UnknownWordIsEmptyResult(t *testing.T) {
	t.Parallel()

	res, err := New().AnalyzeForm(context.Background(), "ناپېژندلې", []dictdom.Entry{{Lemma: "کور"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Lemma != nil || len(res.Possibilities) != 0 {
		t.Fatalf("want empty result, got %+v", res)
	}
}

func TestAnalyze_DictionaryFormMatches(t *testing.T) {
	t.Parallel()

	res, err := New().AnalyzeForm(context.Background(), " کور ", []dictdom.Entry{{Lemma: "کور", CategoryHint: "n. m."}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Lemma == nil || *res.Lemma != "کور" {
		t.Fatalf("lemma = %v", res.Lemma)
	}
	if res.Possibilities[0].Description != "dictionary form" {
		t.Errorf("description = %q", res.Possibilities[0].Description)
	}
}
