package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "pashtolex/internal/platform/errors"
)

func fetchFrom(t *testing.T, body string, status int) (int, error) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	entries, err := NewClient(Options{URL: srv.URL}).FetchDictionary(context.Background())
	return len(entries), err
}

func TestFetch_TopLevelArray(t *testing.T) {
	t.Parallel()

	n, err := fetchFrom(t, `[{"p":"کور","f":"kor","c":"n. m."},{"p":"اسپه"}]`, http.StatusOK)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("entries = %d, want 2", n)
	}
}

func TestFetch_EntriesObject(t *testing.T) {
	t.Parallel()

	n, err := fetchFrom(t, `{"version":3,"entries":[{"p":"کور"}]}`, http.StatusOK)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("entries = %d, want 1", n)
	}
}

func TestFetch_ObjectWithoutEntriesIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := fetchFrom(t, `{"words":[]}`, http.StatusOK)
	if !perr.IsCode(err, perr.ErrorCodeMalformedSource) {
		t.Fatalf("err = %v, want MalformedSource", err)
	}
}

func TestFetch_ScalarBodyIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := fetchFrom(t, `42`, http.StatusOK)
	if !perr.IsCode(err, perr.ErrorCodeMalformedSource) {
		t.Fatalf("err = %v, want MalformedSource", err)
	}
}

func TestFetch_Non2xxIsSourceUnavailable(t *testing.T) {
	t.Parallel()

	_, err := fetchFrom(t, `[]`, http.StatusBadGateway)
	if !perr.IsCode(err, perr.ErrorCodeSourceUnavailable) {
		t.Fatalf("err = %v, want SourceUnavailable", err)
	}
}

func TestFetch_UnreachableIsSourceUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens here anymore

	_, err := NewClient(Options{URL: srv.URL}).FetchDictionary(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeSourceUnavailable) {
		t.Fatalf("err = %v, want SourceUnavailable", err)
	}
}
