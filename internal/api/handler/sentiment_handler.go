package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/evalease/sentiment-service/internal/api/middleware"
	"github.com/evalease/sentiment-service/internal/domain"
	"github.com/evalease/sentiment-service/internal/service"
)

// SentimentHandler serves the text classification endpoint.
type SentimentHandler struct {
	svc    *service.SentimentService
	logger *zap.Logger
}

func NewSentimentHandler(svc *service.SentimentService, logger *zap.Logger) *SentimentHandler {
	return &SentimentHandler{svc: svc, logger: logger}
}

// Analyze handles POST /api/sentiment
//
// @Summary     Classify the sentiment of a text
// @Tags        sentiment
// @Accept      json
// @Produce     json
// @Param       body  body      domain.AnalyzeRequest  true  "Text to classify"
// @Success     200   {object}  domain.Analysis
// @Failure     400   {object}  map[string]string
// @Failure     413   {object}  map[string]string
// @Router      /api/sentiment [post]
func (h *SentimentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(r.Body)
	if err != nil {
		mapError(w, err)
		return
	}

	a, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		h.logger.Warn("sentiment analysis failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// decodeAnalyzeRequest reads a JSON object body. An empty body, invalid
// JSON, a non-object document, or a non-string text all yield
// ErrMissingText. A null text decodes to a nil pointer and is rejected later
// by Validate. A body cut off by the size limit yields ErrBodyTooLarge.
func decodeAnalyzeRequest(body io.Reader) (domain.AnalyzeRequest, error) {
	var req domain.AnalyzeRequest
	if body == nil {
		return req, domain.ErrMissingText
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, domain.ErrBodyTooLarge
		}
		return req, domain.ErrMissingText
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return req, domain.ErrMissingText
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, domain.ErrMissingText
	}
	return req, nil
}
