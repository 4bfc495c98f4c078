package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"pashtolex/internal/modkit/httpkit"
	perr "pashtolex/internal/platform/errors"
	phttp "pashtolex/internal/platform/net/http"
	dom "pashtolex/internal/services/lookup/domain"
	morphdom "pashtolex/internal/services/morph/domain"
)

// stubReader scripts the port responses and counts calls
type stubReader struct {
	calls     atomic.Int32
	analyze   dom.AnalyzeResponse
	conjugate dom.ConjugateResponse
	err       error
}

func (s *stubReader) Analyze(context.Context, string) (dom.AnalyzeResponse, error) {
	s.calls.Add(1)
	return s.analyze, s.err
}

func (s *stubReader) Conjugate(context.Context, string) (dom.ConjugateResponse, error) {
	s.calls.Add(1)
	return s.conjugate, s.err
}

func serve(t *testing.T, reader dom.ReaderPort, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, Deps{Reader: reader})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAnalyze_OK(t *testing.T) {
	t.Parallel()

	lemma := "کور"
	reader := &stubReader{analyze: dom.AnalyzeResponse{
		OK:            true,
		Lemma:         &lemma,
		Possibilities: []morphdom.Analysis{{Lemma: "کور", Form: "کورونه"}},
	}}

	rec := serve(t, reader, "/analyze?form=کورونه")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var body dom.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || body.Lemma == nil || *body.Lemma != "کور" {
		t.Fatalf("body = %+v", body)
	}
}

func TestAnalyze_MissingParamIs400AndNeverHitsService(t *testing.T) {
	t.Parallel()

	reader := &stubReader{}
	rec := serve(t, reader, "/analyze")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var env httpkit.FailEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.OK {
		t.Fatal("failure envelope must carry ok=false")
	}
	if env.Field != "form" {
		t.Fatalf("field = %q, want form", env.Field)
	}
	if n := reader.calls.Load(); n != 0 {
		t.Fatalf("service reached %d times on invalid input", n)
	}
}

func TestAnalyze_UpstreamFailureIs500(t *testing.T) {
	t.Parallel()

	reader := &stubReader{err: perr.Upstream(perr.SourceUnavailablef("dictionary down"), "load dictionary")}
	rec := serve(t, reader, "/analyze?form=کور")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var env httpkit.FailEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.OK || env.Error == "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestConjugate_OKWithEmptyForms(t *testing.T) {
	t.Parallel()

	reader := &stubReader{conjugate: dom.ConjugateResponse{
		OK:    true,
		Lemma: "ناشته",
		Forms: []morphdom.InflectedForm{},
	}}

	rec := serve(t, reader, "/conjugate?lemma=ناشته")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var body dom.ConjugateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || body.Forms == nil || len(body.Forms) != 0 {
		t.Fatalf("body = %+v", body)
	}
}

func TestConjugate_MissingParamIs400(t *testing.T) {
	t.Parallel()

	rec := serve(t, &stubReader{}, "/conjugate")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
}

func TestResponseBodyKeepsPashtoUnescaped(t *testing.T) {
	t.Parallel()

	reader := &stubReader{conjugate: dom.ConjugateResponse{
		OK:    true,
		Lemma: "کور",
		Forms: []morphdom.InflectedForm{{Form: "کورونه", Romanization: "korona", Category: "n. m."}},
	}}
	rec := serve(t, reader, "/conjugate?lemma=کور")

	if got := rec.Body.String(); !json.Valid([]byte(got)) || !strings.Contains(got, "کورونه") {
		t.Fatalf("body = %s", got)
	}
}
