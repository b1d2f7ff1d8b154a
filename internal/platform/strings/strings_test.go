package strings

import (
	"testing"

	kit "hourglass/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"b", "c"}
	if got := IfEmpty(in, def); len(got) != 2 || got[0] != "b" {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("temporal", "name"); got != "temporal" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"temporal", "/temporal"},
		{"/temporal", "/temporal"},
		{" /temporal/ ", "/temporal"},
		{"//meta//", "/meta"},
	}
	for _, tc := range tests {
		if got := MustPrefix(tc.in); got != tc.want {
			t.Errorf("MustPrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	kit.MustPanic(t, func() { _ = MustPrefix("") })
	kit.MustPanic(t, func() { _ = MustPrefix(" / ") })
}

func TestEmptyToNil(t *testing.T) {
	if got := EmptyToNil("  "); got != "" {
		t.Fatalf("EmptyToNil whitespace = %q", got)
	}
	if got := EmptyToNil(" x "); got != " x " {
		t.Fatalf("EmptyToNil = %q", got)
	}
}
