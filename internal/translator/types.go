// Package translator defines the translation provider contract and the
// clients for the supported external services.
package translator

import (
	"context"
)

// Request carries a single translation call. An empty SourceLang asks the
// provider to detect the source language from the text.
type Request struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang,omitempty"`
	TargetLang string `json:"target_lang"`
}

// Result is the outcome of one provider round trip. SourceLang is always
// populated: either the pass-through of the requested source language or the
// code the provider resolved during detection.
type Result struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
}

// Provider is the capability contract shared by the real provider clients
// and test stand-ins. Each Translate call maps to exactly one provider
// round trip; there is no caching, batching or retrying at this level.
type Provider interface {
	Name() string
	Translate(ctx context.Context, req Request) (*Result, error)
}
