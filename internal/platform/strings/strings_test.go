package strings

import "testing"

func TestFirstSegment(t *testing.T) {
	cases := []struct{ in, want string }{
		{"kor", "kor"},
		{"kor, koor", "kor"},
		{" koruna ,x,y", "koruna"},
		{"", ""},
		{",second", ""},
	}
	for _, c := range cases {
		if got := FirstSegment(c.in); got != c.want {
			t.Fatalf("FirstSegment(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMustPrefix(t *testing.T) {
	if got := MustPrefix(" /meta/ "); got != "/meta" {
		t.Fatalf("MustPrefix = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for root prefix")
		}
	}()
	MustPrefix("/")
}

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty nil = %v", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 {
		t.Fatalf("IfEmpty non-empty = %v", got)
	}
}
