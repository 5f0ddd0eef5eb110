// Package perception wraps the generative-text backend. The pipeline only
// sees the LLMClient interface, so tests can substitute a fake and the
// server runs in local-only mode when no credential is configured.
package perception

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// LLMClient is the contract the resolution pipeline depends on.
type LLMClient interface {
	// Complete sends a prompt and returns the completion text. One
	// attempt, bounded by the client timeout; the caller owns fallback.
	Complete(ctx context.Context, prompt string) (string, error)

	// Available reports whether the client holds a usable credential.
	Available() bool
}

// ErrBackendUnavailable is returned when no credential is configured.
var ErrBackendUnavailable = errors.New("generative backend not configured")

// ErrorKind is a coarse classification of backend failures. It changes
// only which HTTP status the adapter reports, never whether a usable
// answer is produced.
type ErrorKind int

const (
	ErrKindTransport ErrorKind = iota
	ErrKindQuota
	ErrKindAuth
	ErrKindTimeout
	ErrKindUnavailable
)

// ClassifyError maps a backend error to an ErrorKind. API errors carry a
// status code; everything else falls back to substring matching, which is
// all some SDK error paths give us.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrKindTransport
	}
	if errors.Is(err, ErrBackendUnavailable) {
		return ErrKindUnavailable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrKindTimeout
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return ErrKindQuota
		case 401, 403:
			return ErrKindAuth
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"), strings.Contains(msg, "429"),
		strings.Contains(msg, "resource_exhausted"):
		return ErrKindQuota
	case strings.Contains(msg, "api key"), strings.Contains(msg, "api_key"),
		strings.Contains(msg, "credential"), strings.Contains(msg, "unauthenticated"):
		return ErrKindAuth
	case strings.Contains(msg, "deadline"), strings.Contains(msg, "timeout"):
		return ErrKindTimeout
	}
	return ErrKindTransport
}

var emphasisStripper = strings.NewReplacer("*", "", "`", "")

// Sanitize removes emphasis markup from a backend response. The prompt
// asks for plain text but the model is not guaranteed to comply.
func Sanitize(text string) string {
	return strings.TrimSpace(emphasisStripper.Replace(text))
}
