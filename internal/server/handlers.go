package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/valpere/translate-api/internal/auth"
	"github.com/valpere/translate-api/internal/store"
	"github.com/valpere/translate-api/internal/textutil"
	"github.com/valpere/translate-api/internal/translator"
)

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Text         string  `json:"text"`
	DetectedLang string  `json:"detected_lang"`
	Confidence   float64 `json:"confidence"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"version":     Version,
		"environment": s.cfg.Environment,
	})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to Language Translation API",
		"version":     Version,
		"environment": s.cfg.Environment,
		"endpoints": gin.H{
			"health":    "/health",
			"translate": "/api/v1/translate",
			"detect":    "/api/v1/detect",
			"history":   "/api/v1/history",
		},
		"authentication": "API key required in " + auth.HeaderName + " header",
	})
}

// handleTranslate serves POST /api/v1/translate.
func (s *Server) handleTranslate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	req.Text = textutil.Sanitize(req.Text, s.cfg.Provider.MaxTextLength)
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "text is required"})
		return
	}
	if req.TargetLang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "target_lang is required"})
		return
	}
	if _, err := language.Parse(req.TargetLang); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unknown target_lang: " + req.TargetLang})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.Provider.Timeout)
	defer cancel()

	result, err := s.provider.Translate(ctx, translator.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		s.respondProviderError(c, err)
		return
	}

	s.recordHistory(c, req, result)

	c.JSON(http.StatusOK, translateResponse{
		OriginalText:   req.Text,
		TranslatedText: result.TranslatedText,
		SourceLanguage: result.SourceLang,
		TargetLanguage: req.TargetLang,
	})
}

// handleDetect serves POST /api/v1/detect. Detection runs locally; no
// provider round trip is involved.
func (s *Server) handleDetect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	req.Text = textutil.Sanitize(req.Text, s.cfg.Provider.MaxTextLength)
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "text is required"})
		return
	}

	code, conf, ok := s.det.DetectWithConfidence(req.Text)
	if !ok {
		// Undetectable text is not an error; report the undetermined code.
		code, conf = "und", 0
	}

	c.JSON(http.StatusOK, detectResponse{
		Text:         req.Text,
		DetectedLang: code,
		Confidence:   conf,
	})
}

// handleHistory serves GET /api/v1/history, returning the most recent
// translations performed with the calling API key.
func (s *Server) handleHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "history storage is not configured"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be a positive integer"})
			return
		}
		if n > 500 {
			n = 500
		}
		limit = n
	}

	records, err := s.history.ListHistory(c.Request.Context(), c.GetString(ctxKeyAPIKey), limit)
	if err != nil {
		s.logger.Error("failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read history"})
		return
	}
	if records == nil {
		records = []store.Record{}
	}

	c.JSON(http.StatusOK, records)
}

// respondProviderError maps a provider failure onto an HTTP status:
// transient failures get 503, permanent rejections 422.
func (s *Server) respondProviderError(c *gin.Context, err error) {
	switch translator.KindOf(err) {
	case translator.KindRejected:
		s.logger.Warn("provider rejected translation", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		s.logger.Error("translation provider unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "translation provider unavailable"})
	}
}

// recordHistory persists a completed translation. Failures are logged, not
// surfaced: history is best effort and must never fail a translation.
func (s *Server) recordHistory(c *gin.Context, req translateRequest, result *translator.Result) {
	if s.history == nil {
		return
	}

	rec := store.Record{
		ID:             uuid.NewString(),
		SourceText:     req.Text,
		TranslatedText: result.TranslatedText,
		SourceLang:     result.SourceLang,
		TargetLang:     req.TargetLang,
		UserKey:        c.GetString(ctxKeyAPIKey),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.history.SaveTranslation(c.Request.Context(), rec); err != nil {
		s.logger.Error("failed to record translation history", zap.Error(err))
	}
}
