// Package detector wraps the lingua-go language detector.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Detector identifies the language of a text. The underlying model is
// expensive to build; construct once and reuse.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

// DetectISO returns the lowercase ISO-639-1 code of the most likely
// language, or false when the text is empty or too ambiguous.
func (d *Detector) DetectISO(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// DetectWithConfidence returns the detected ISO-639-1 code together with the
// model's confidence in [0, 1].
func (d *Detector) DetectWithConfidence(text string) (string, float64, bool) {
	if strings.TrimSpace(text) == "" {
		return "", 0, false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", 0, false
	}
	conf := d.detector.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), conf, true
}
