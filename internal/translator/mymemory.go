package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// DetectFunc resolves an ISO-639-1 code from text. MyMemory has no
// auto-detect of its own: its API requires an explicit language pair, so the
// caller supplies a local detector.
type DetectFunc func(text string) (string, bool)

// MyMemoryProvider talks to the free MyMemory translation API.
type MyMemoryProvider struct {
	email   string
	baseURL string
	detect  DetectFunc
	client  *http.Client
}

// NewMyMemory creates the MyMemory provider. Supplying a contact email
// raises the daily character quota.
func NewMyMemory(email string, detect DetectFunc) *MyMemoryProvider {
	return &MyMemoryProvider{
		email:   email,
		baseURL: myMemoryBaseURL,
		detect:  detect,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *MyMemoryProvider) Name() string {
	return "mymemory"
}

func (p *MyMemoryProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	sourceLang := req.SourceLang
	if sourceLang == "" {
		detected, ok := p.detect(req.Text)
		if !ok {
			return nil, Rejected(p.Name(), fmt.Errorf("could not determine source language"))
		}
		sourceLang = detected
	}

	langPair := fmt.Sprintf("%s|%s", sourceLang, req.TargetLang)

	apiURL := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		p.baseURL,
		url.QueryEscape(req.Text),
		url.QueryEscape(langPair))

	if p.email != "" {
		apiURL += fmt.Sprintf("&de=%s", url.QueryEscape(p.email))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, Rejected(p.Name(), fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, Unavailable(p.Name(), fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, Unavailable(p.Name(), fmt.Errorf("API returned status %d", resp.StatusCode))
	}
	if resp.StatusCode >= 400 {
		return nil, Rejected(p.Name(), fmt.Errorf("API returned status %d", resp.StatusCode))
	}

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		return nil, Unavailable(p.Name(), fmt.Errorf("failed to decode response: %w", err))
	}

	if mymemResp.ResponseStatus != 200 {
		return nil, Rejected(p.Name(), fmt.Errorf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus))
	}

	return &Result{
		TranslatedText: mymemResp.ResponseData.TranslatedText,
		SourceLang:     sourceLang,
	}, nil
}
