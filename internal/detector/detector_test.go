package detector

import (
	"testing"
)

func TestDetector_DetectISO(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "empty text",
			text:     "",
			wantCode: "",
			wantOK:   false,
		},
		{
			name:     "whitespace only",
			text:     "   \n ",
			wantCode: "",
			wantOK:   false,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantCode: "en",
			wantOK:   true,
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantCode: "de",
			wantOK:   true,
		},
		{
			name:     "french text",
			text:     "Bonjour, ceci est un test en français.",
			wantCode: "fr",
			wantOK:   true,
		},
		{
			name:     "spanish text",
			text:     "Hola, esto es una prueba en español.",
			wantCode: "es",
			wantOK:   true,
		},
		{
			name:     "ukrainian text",
			text:     "Привіт, це тест українською мовою.",
			wantCode: "uk",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := d.DetectISO(tt.text)
			if ok != tt.wantOK {
				t.Errorf("DetectISO(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if tt.wantOK && code != tt.wantCode {
				t.Errorf("DetectISO(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestDetector_DetectWithConfidence(t *testing.T) {
	d := New()

	code, conf, ok := d.DetectWithConfidence("Guten Tag, wie geht es Ihnen heute?")
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	if code != "de" {
		t.Errorf("expected de, got %q", code)
	}
	if conf <= 0 || conf > 1 {
		t.Errorf("expected confidence in (0, 1], got %v", conf)
	}
}

func TestDetector_DetectWithConfidence_Empty(t *testing.T) {
	d := New()

	_, _, ok := d.DetectWithConfidence("")
	if ok {
		t.Error("expected detection to fail for empty text")
	}
}

func TestDetector_ShortText(t *testing.T) {
	d := New()

	// Short text may or may not be detected, just check it doesn't panic.
	code, ok := d.DetectISO("Hi")
	_ = code
	_ = ok
}
