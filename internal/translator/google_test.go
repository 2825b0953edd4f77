package translator

import (
	"testing"

	"golang.org/x/text/language"
)

func TestBaseLangCode(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"de", "de"},
		{"zh-Hans", "zh"},
		{"pt-BR", "pt"},
		{"en-Latn-US", "en"},
	}

	for _, tt := range tests {
		tag := language.MustParse(tt.tag)
		if got := baseLangCode(tag); got != tt.want {
			t.Errorf("baseLangCode(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
