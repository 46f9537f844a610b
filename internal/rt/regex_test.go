package rt

import (
	"testing"

	"smashrt/internal/regex"
)

func TestSplitPatternFlags(t *testing.T) {
	tests := []struct {
		in, def    string
		pat, flags string
	}{
		{"abc/gi", "", "abc", "gi"},
		{"abc", "", "abc", ""},
		{"abc", "g", "abc", "g"},
		{"a/b/i", "", "a/b", "i"},
		{"/abc", "", "/abc", ""},
	}
	for _, tt := range tests {
		pat, flags := splitPatternFlags(tt.in, tt.def)
		if pat != tt.pat || flags != tt.flags {
			t.Errorf("splitPatternFlags(%q, %q) = %q, %q; want %q, %q",
				tt.in, tt.def, pat, flags, tt.pat, tt.flags)
		}
	}
}

func TestStringMatch(t *testing.T) {
	tests := []struct {
		text, pattern, want string
	}{
		{"a1 b22 c333", `[0-9]+/g`, `["1","22","333"]`},
		{"a1 b22 c333", `[0-9]+`, `["1"]`},
		{"Hello World", "hello/i", `["Hello"]`},
		{"nothing here", `[0-9]`, `[]`},
	}
	for _, tt := range tests {
		if got := StringMatch(tt.text, tt.pattern); got != tt.want {
			t.Errorf("StringMatch(%q, %q) = %q, want %q", tt.text, tt.pattern, got, tt.want)
		}
	}
}

func TestStringReplace(t *testing.T) {
	tests := []struct {
		text, pattern, repl, want string
	}{
		// No flags suffix: replacement is global by default.
		{"a1b2c3", `[0-9]`, "_", "a_b_c_"},
		// Explicit flags keep working and still replace globally.
		{"AxaXa", "x/i", "-", "A-a-a"},
		{"no digits", `[0-9]`, "_", "no digits"},
	}
	for _, tt := range tests {
		if got := StringReplace(tt.text, tt.pattern, tt.repl); got != tt.want {
			t.Errorf("StringReplace(%q, %q, %q) = %q, want %q",
				tt.text, tt.pattern, tt.repl, got, tt.want)
		}
	}
}

func TestRegexHandleAdapters(t *testing.T) {
	re := regex.New(`[0-9]+`, "g")
	if !RegexTest(re, "abc 42") {
		t.Fatal("expected a match")
	}
	if got := RegexMatch(re, "a1 b2"); got != `["1","2"]` {
		t.Fatalf("RegexMatch = %q", got)
	}
	if got := RegexReplace(re, "a1 b2", "#"); got != "a# b#" {
		t.Fatalf("RegexReplace = %q", got)
	}
}
