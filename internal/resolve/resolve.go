// Package resolve orchestrates the answer-resolution pipeline: classify a
// question against the local knowledge base, delegate misses to the
// generative backend, and degrade through an ordered fallback chain when
// the backend fails. Resolve never returns an error to its caller; every
// terminal state produces a usable Result.
package resolve

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"askfolio/internal/classify"
	"askfolio/internal/knowledge"
	"askfolio/internal/perception"
)

// Result sources. Diagnostic only: the presentation layer styles replies
// by source, nothing downstream branches on it.
const (
	SourceLocal         = "local"
	SourceRemote        = "remote"
	SourceLocalFallback = "local-fallback"
	SourceFallback      = "fallback"
)

// Result is the outcome of resolving one question.
type Result struct {
	Text   string
	Source string

	// BackendErr is set when the remote call failed (or was never
	// possible) and a degraded local answer was substituted. Advisory:
	// the HTTP adapter uses it to pick a status code, nothing else.
	BackendErr error
}

// Pipeline resolves questions. All fields are read-only after New, so a
// single Pipeline serves unlimited concurrent requests.
type Pipeline struct {
	kb         *knowledge.Base
	classifier *classify.Classifier
	backend    perception.LLMClient
	logger     *zap.Logger
}

// New creates a pipeline. backend may be nil for local-only mode; logger
// may be nil and is replaced with a no-op.
func New(kb *knowledge.Base, c *classify.Classifier, backend perception.LLMClient, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{kb: kb, classifier: c, backend: backend, logger: logger}
}

// BackendAvailable reports whether remote resolution is configured.
func (p *Pipeline) BackendAvailable() bool {
	return p.backend != nil && p.backend.Available()
}

// Resolve answers a raw question. Stateless per call: no prior turns are
// read, identical questions are fully re-resolved.
func (p *Pipeline) Resolve(ctx context.Context, raw string) Result {
	normalized := classify.Normalize(raw)
	if normalized == "" {
		return Result{Text: p.kb.HelpPrompt(), Source: SourceLocal}
	}

	if isEmojiOnly(normalized) {
		p.logger.Debug("emoji-only input", zap.String("question", raw))
		return Result{Text: p.kb.EmojiPrompt(), Source: SourceLocal}
	}

	// Strip emoji for matching; the original text still reaches the
	// backend prompt so context survives.
	matchable := classify.Normalize(stripEmoji(normalized))
	if matchable == "" {
		return Result{Text: p.kb.EmojiPrompt(), Source: SourceLocal}
	}

	if topic, ok := p.classifier.Classify(matchable); ok {
		p.logger.Debug("local match", zap.String("topic", string(topic)))
		return Result{Text: p.kb.Lookup(topic), Source: SourceLocal}
	}

	if !p.BackendAvailable() {
		// Defensive reclassification: covers the race where the
		// availability check and the first classification diverge.
		if topic, ok := p.classifier.Classify(matchable); ok {
			return Result{Text: p.kb.Lookup(topic), Source: SourceLocal}
		}
		p.logger.Info("backend unavailable, serving default answer")
		return Result{
			Text:       p.kb.Lookup(knowledge.TopicSkills),
			Source:     SourceFallback,
			BackendErr: perception.ErrBackendUnavailable,
		}
	}

	prompt := fmt.Sprintf("%s\n\nUser Question: %s\n\nAssistant Response:", knowledge.Context(), raw)

	text, err := p.backend.Complete(ctx, prompt)
	if err != nil {
		p.logger.Warn("backend call failed", zap.Error(err))
		return p.fallback(matchable, err)
	}

	return Result{Text: perception.Sanitize(text), Source: SourceRemote}
}

// fallback is the degraded chain after a backend failure: reclassify,
// then coarse keyword buckets, then the unconditional Skills answer. A
// raw error never surfaces while any plausible local answer exists.
func (p *Pipeline) fallback(matchable string, backendErr error) Result {
	if topic, ok := p.classifier.Classify(matchable); ok {
		return Result{
			Text:       p.kb.Lookup(topic),
			Source:     SourceLocalFallback,
			BackendErr: backendErr,
		}
	}

	if topic, ok := p.classifier.GuessBucket(matchable); ok {
		return Result{
			Text:       p.kb.Lookup(topic),
			Source:     SourceFallback,
			BackendErr: backendErr,
		}
	}

	return Result{
		Text:       p.kb.Lookup(knowledge.TopicSkills),
		Source:     SourceFallback,
		BackendErr: backendErr,
	}
}
