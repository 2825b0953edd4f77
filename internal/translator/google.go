package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleProvider talks to the Google Translate v2 API. The underlying client
// is created once and shared across requests.
type GoogleProvider struct {
	client *translate.Client
}

// NewGoogle creates the Google provider. credentials may be empty, in which
// case the client falls back to application default credentials.
func NewGoogle(ctx context.Context, credentials string) (*GoogleProvider, error) {
	opts := []option.ClientOption{}
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleProvider{client: client}, nil
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		return nil, Rejected(p.Name(), fmt.Errorf("invalid target language %q: %w", req.TargetLang, err))
	}

	var opts *translate.Options
	if req.SourceLang != "" {
		sourceTag, err := language.Parse(req.SourceLang)
		if err != nil {
			return nil, Rejected(p.Name(), fmt.Errorf("invalid source language %q: %w", req.SourceLang, err))
		}
		opts = &translate.Options{Source: sourceTag}
	}

	translations, err := p.client.Translate(ctx, []string{req.Text}, targetTag, opts)
	if err != nil {
		return nil, classifyGoogleErr(p.Name(), err)
	}

	if len(translations) == 0 {
		return nil, Unavailable(p.Name(), fmt.Errorf("no translation returned"))
	}

	resolved := req.SourceLang
	if resolved == "" {
		resolved = baseLangCode(translations[0].Source)
	}

	return &Result{
		TranslatedText: translations[0].Text,
		SourceLang:     resolved,
	}, nil
}

// Close releases the underlying API client.
func (p *GoogleProvider) Close() error {
	return p.client.Close()
}

// baseLangCode reduces a BCP-47 tag such as zh-Hans to its lowercase base
// language code.
func baseLangCode(tag language.Tag) string {
	base, _ := tag.Base()
	return strings.ToLower(base.String())
}

// classifyGoogleErr maps an API error onto the failure taxonomy: 4xx means
// the provider rejected the request, everything else is transient.
func classifyGoogleErr(name string, err error) *Error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
		return Rejected(name, err)
	}
	return Unavailable(name, err)
}
