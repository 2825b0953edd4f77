// Package textutil sanitizes inbound text before it reaches a provider.
package textutil

import (
	"strings"
)

// Sanitize strips NUL bytes, trims surrounding whitespace and caps the text
// at maxLen runes. Pass maxLen <= 0 to skip the length cap.
func Sanitize(text string, maxLen int) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.TrimSpace(text)

	if maxLen > 0 {
		if runes := []rune(text); len(runes) > maxLen {
			text = string(runes[:maxLen])
		}
	}
	return text
}
