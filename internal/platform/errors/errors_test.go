package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode_BadInputIs400(t *testing.T) {
	for _, c := range []ErrorCode{ErrorCodeInvalidRequest, ErrorCodeValidation, ErrorCodeJSON} {
		if got := HTTPStatusCode(c); got != http.StatusBadRequest {
			t.Fatalf("code %d mapped to %d, want 400", c, got)
		}
	}
}

func TestHTTPStatusCode_DependencyFailuresAre500(t *testing.T) {
	for _, c := range []ErrorCode{
		ErrorCodeSourceUnavailable,
		ErrorCodeMalformedSource,
		ErrorCodeCapability,
		ErrorCodeUpstream,
		ErrorCodePersistence,
	} {
		if got := HTTPStatusCode(c); got != http.StatusInternalServerError {
			t.Fatalf("code %d mapped to %d, want 500", c, got)
		}
	}
}

func TestWrap_PreservesCauseAndCode(t *testing.T) {
	cause := stderrs.New("connection refused")
	err := Upstream(cause, "dictionary fetch failed")

	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped error lost its cause")
	}
	if CodeOf(err) != ErrorCodeUpstream {
		t.Fatalf("CodeOf = %d, want upstream", CodeOf(err))
	}
	if Root(err) != cause {
		t.Fatalf("Root did not return the deepest cause")
	}
}

func TestWireFrom_ForeignError(t *testing.T) {
	w := WireFrom(stderrs.New("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("unexpected wire: %+v", w)
	}
}

func TestWireFrom_Nil(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("expected zero wire, got %+v", w)
	}
}

func TestWithOp_CopyOnWrite(t *testing.T) {
	base := InvalidRequestf("missing form")
	tagged := WithOp(base, "lookup.analyze")

	be, _ := As(base)
	te, _ := As(tagged)
	if be.Op() != "" {
		t.Fatalf("original mutated: op = %q", be.Op())
	}
	if te.Op() != "lookup.analyze" {
		t.Fatalf("op not attached: %q", te.Op())
	}
}
