package domain

import (
	"testing"

	dictdom "pashtolex/internal/services/dictionary/domain"
)

func TestRealize_PrefersCapabilityValues(t *testing.T) {
	t.Parallel()

	ent := dictdom.Entry{Lemma: "لیدل", RomanizationHint: "leedúl, katul", CategoryHint: "v. trans."}
	got := Realize(RawForm{Form: "وینم", Romanization: "weenum", Category: "v. pres."}, ent)
	if got.Romanization != "weenum" || got.Category != "v. pres." {
		t.Fatalf("got %+v", got)
	}
}

func TestRealize_FallsBackToFirstHintSegment(t *testing.T) {
	t.Parallel()

	ent := dictdom.Entry{Lemma: "کور", RomanizationHint: "kor, kor alt", CategoryHint: "n. m., n."}
	got := Realize(RawForm{Form: "کورونه"}, ent)
	if got.Romanization != "kor" {
		t.Errorf("romanization = %q, want kor", got.Romanization)
	}
	if got.Category != "n. m." {
		t.Errorf("category = %q, want n. m.", got.Category)
	}
}

func TestRealize_EmptyHintsStayEmpty(t *testing.T) {
	t.Parallel()

	got := Realize(RawForm{Form: "کور"}, dictdom.Entry{Lemma: "کور"})
	if got.Romanization != "" || got.Category != "" {
		t.Fatalf("got %+v", got)
	}
}
