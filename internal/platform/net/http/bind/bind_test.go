package bind

import (
	"net/http/httptest"
	"testing"

	perr "pashtolex/internal/platform/errors"
)

type analyzeQuery struct {
	Form string `query:"form" validate:"required"`
}

type pagedQuery struct {
	Lemma string `query:"lemma" validate:"required"`
	Limit int    `query:"limit" validate:"omitempty,min=1"`
}

func TestQuery_BindsAndValidates(t *testing.T) {
	r := httptest.NewRequest("GET", "/analyze?form=%DA%A9%D9%88%D8%B1", nil)
	got, err := Query[analyzeQuery](r)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got.Form != "کور" {
		t.Fatalf("Form = %q", got.Form)
	}
}

func TestQuery_MissingRequiredIsInvalidRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/analyze", nil)
	_, err := Query[analyzeQuery](r)
	if err == nil {
		t.Fatal("expected error for missing form")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidRequest) {
		t.Fatalf("code = %d, want invalid request", perr.CodeOf(err))
	}
	e, _ := perr.As(err)
	if e.Field() != "form" {
		t.Fatalf("field = %q, want form", e.Field())
	}
}

func TestQuery_WhitespaceOnlyIsMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/analyze?form=%20%20", nil)
	_, err := Query[analyzeQuery](r)
	if !perr.IsCode(err, perr.ErrorCodeInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestQuery_BadIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?lemma=a&limit=ten", nil)
	_, err := Query[pagedQuery](r)
	if !perr.IsCode(err, perr.ErrorCodeInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestQuery_IntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?lemma=a&limit=5", nil)
	got, err := Query[pagedQuery](r)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if got.Limit != 5 {
		t.Fatalf("Limit = %d", got.Limit)
	}
}
