package latex

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "spectral range", "spectral range"},
		{"underscore", "target_name", `target\_name`},
		{"braces", "{x}", `\{x\}`},
		{"ampersand hash percent", "a&b #1 50%", `a\&b \#1 50\%`},
		{"backslash", `a\b`, `a$\backslash$b`},
		{"backslash then brace", `\{`, `$\backslash$\{`},
		{"quotes", `the "granule" table`, "the ``granule'' table"},
		{"two quoted runs", `"a" and "b"`, "``a'' and ``b''"},
		{"unpaired quote", `5" disk`, `5" disk`},
		{"empty quotes kept", `""`, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeQuotedLeavesNoASCIIQuotes(t *testing.T) {
	for _, in := range []string{`"x"`, `say "hello world" twice`, `"a_b" & "c"`} {
		got := Escape(in)
		if strings.Contains(got, `"`) {
			t.Errorf("Escape(%q) = %q still contains an ASCII quote", in, got)
		}
		if !strings.Contains(got, "``") || !strings.Contains(got, "''") {
			t.Errorf("Escape(%q) = %q lacks paired quotes", in, got)
		}
	}
}
