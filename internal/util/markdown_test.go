package util

import "testing"

func TestSanitizeMarkdown(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Ana María", "Ana María"},
		{"A*na_`x`", "Anax"},
		{"[Luis](http://x)", "Luishttp://x"},
		{"a|b\\c#d", "abcd"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeMarkdown(tt.in); got != tt.want {
			t.Fatalf("SanitizeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
