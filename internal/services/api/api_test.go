package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"pashtolex/internal/platform/config"
	phttp "pashtolex/internal/platform/net/http"
	"pashtolex/internal/core/inflect"
	dictdom "pashtolex/internal/services/dictionary/domain"
)

type staticDict struct{ entries []dictdom.Entry }

func (d staticDict) Ensure(context.Context) ([]dictdom.Entry, error) { return d.entries, nil }
func (d staticDict) Ready() bool                                     { return true }

func mounted(t *testing.T) http.Handler {
	t.Helper()

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{
		Config: config.New(),
		Dict: staticDict{entries: []dictdom.Entry{
			{Lemma: "کور", RomanizationHint: "kor", CategoryHint: "n. m."},
		}},
		Morph: inflect.New(),
	})
	return r.Mux()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMount_Health(t *testing.T) {
	t.Parallel()

	rec := get(t, mounted(t), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK {
		t.Fatalf("body = %+v", body)
	}
}

func TestMount_AnalyzeEndToEnd(t *testing.T) {
	t.Parallel()

	rec := get(t, mounted(t), "/analyze?form=کورونه")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	var body struct {
		OK    bool    `json:"ok"`
		Lemma *string `json:"lemma"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || body.Lemma == nil || *body.Lemma != "کور" {
		t.Fatalf("body = %s", rec.Body)
	}
}

func TestMount_ConjugateEndToEnd(t *testing.T) {
	t.Parallel()

	rec := get(t, mounted(t), "/conjugate?lemma=کور")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}
	var body struct {
		OK    bool `json:"ok"`
		Forms []struct {
			Form         string `json:"form"`
			Romanization string `json:"romanization"`
		} `json:"forms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.OK || len(body.Forms) == 0 {
		t.Fatalf("body = %s", rec.Body)
	}
	found := false
	for _, f := range body.Forms {
		if f.Form == "کورونه" {
			found = true
			if f.Romanization != "kor" {
				t.Fatalf("hint fallback missing: %+v", f)
			}
		}
	}
	if !found {
		t.Fatalf("plural not generated: %s", rec.Body)
	}
}

func TestMount_MetaEndpoints(t *testing.T) {
	t.Parallel()

	h := mounted(t)
	for _, target := range []string{"/meta/ready", "/meta/version", "/meta/service"} {
		rec := get(t, h, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", target, rec.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: %v", target, err)
		}
		if ok, _ := body["ok"].(bool); !ok {
			t.Fatalf("%s body = %s", target, rec.Body)
		}
	}
}

func TestMount_ProfilerOffByDefault(t *testing.T) {
	t.Parallel()

	rec := get(t, mounted(t), "/debug/pprof/")
	if rec.Code == http.StatusOK {
		t.Fatal("profiler must not mount unless enabled")
	}
}
