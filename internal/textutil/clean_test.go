package textutil

import (
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{
			name:   "plain text unchanged",
			text:   "Hello, how are you?",
			maxLen: 100,
			want:   "Hello, how are you?",
		},
		{
			name:   "trims whitespace",
			text:   "  Guten Tag \n",
			maxLen: 100,
			want:   "Guten Tag",
		},
		{
			name:   "strips nul bytes",
			text:   "Hel\x00lo",
			maxLen: 100,
			want:   "Hello",
		},
		{
			name:   "caps at max length",
			text:   "abcdefgh",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "length cap counts runes not bytes",
			text:   "привіт",
			maxLen: 4,
			want:   "прив",
		},
		{
			name:   "zero max length disables cap",
			text:   "abcdefgh",
			maxLen: 0,
			want:   "abcdefgh",
		},
		{
			name:   "whitespace only becomes empty",
			text:   "   \t  ",
			maxLen: 100,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.text, tt.maxLen)
			if got != tt.want {
				t.Errorf("Sanitize(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}
