// Package server is the HTTP adapter over the resolution pipeline. Status
// codes on degraded answers are advisory: every non-2xx response except a
// hard 400 still carries usable fallback text, and clients are expected to
// render it.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"askfolio/internal/perception"
	"askfolio/internal/resolve"
)

// AskRequest is the POST /ask body.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the success body.
type AskResponse struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

// DegradedResponse is the body for non-2xx statuses that still carry a
// usable answer.
type DegradedResponse struct {
	Error    string `json:"error"`
	Fallback string `json:"fallback"`
	Source   string `json:"source"`
}

// AskHandler serves the question-answering endpoints.
type AskHandler struct {
	pipeline *resolve.Pipeline
	logger   *zap.Logger
}

// NewAskHandler creates the handler.
func NewAskHandler(pipeline *resolve.Pipeline, logger *zap.Logger) *AskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AskHandler{pipeline: pipeline, logger: logger}
}

// Ask resolves one question per request. The pipeline never errors; only
// a blank question produces a body without answer text.
func (h *AskHandler) Ask(c *gin.Context) {
	reqID := uuid.NewString()
	log := h.logger.With(zap.String("request_id", reqID))

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide a valid question"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide a valid question"})
		return
	}

	start := time.Now()
	res := h.pipeline.Resolve(c.Request.Context(), req.Question)
	log.Info("question resolved",
		zap.String("source", res.Source),
		zap.Duration("elapsed", time.Since(start)),
	)

	// Local answers, remote answers and reclassified local-fallbacks are
	// all plain successes; only the bucket/default fallbacks report the
	// backend failure through the status code.
	if res.BackendErr == nil || res.Source == resolve.SourceLocalFallback {
		c.JSON(http.StatusOK, AskResponse{Response: res.Text, Source: res.Source})
		return
	}

	status := http.StatusInternalServerError
	switch perception.ClassifyError(res.BackendErr) {
	case perception.ErrKindUnavailable:
		status = http.StatusServiceUnavailable
	case perception.ErrKindQuota:
		status = http.StatusTooManyRequests
	case perception.ErrKindAuth:
		status = http.StatusUnauthorized
	}

	log.Warn("degraded answer served",
		zap.Int("status", status),
		zap.Error(res.BackendErr),
	)
	c.JSON(status, DegradedResponse{
		Error:    "I'm having a moment, but I can still help!",
		Fallback: res.Text,
		Source:   res.Source,
	})
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	BackendAvailable bool   `json:"backend_available"`
}

// Health reports backend availability. No side effects.
func (h *AskHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:           "ok",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		BackendAvailable: h.pipeline.BackendAvailable(),
	})
}
