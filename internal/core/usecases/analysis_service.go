package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
	"github.com/kdeguzman/negosyoplan/internal/pkg/markup"
	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
)

// AnalysisService runs the siting pipeline: compose a prompt, get a
// completion, convert it to HTML. Any failure composing or completing
// the full prompt triggers exactly one retry with the minimal fallback
// prompt before surfacing an error.
type AnalysisService struct {
	composer  *PromptComposer
	completer ports.ChatCompleter
	events    ports.EventPublisher // optional
}

// NewAnalysisService wires the pipeline.
func NewAnalysisService(composer *PromptComposer, completer ports.ChatCompleter, events ports.EventPublisher) *AnalysisService {
	return &AnalysisService{composer: composer, completer: completer, events: events}
}

// Analyze executes the pipeline for one request.
func (s *AnalysisService) Analyze(ctx context.Context, req domain.AnalysisRequest) (domain.AnalysisResult, error) {
	if s.completer == nil {
		return domain.AnalysisResult{}, fmt.Errorf("chat completer not set")
	}

	composed, err := s.composer.Compose(ctx, req)
	if err != nil {
		slog.Warn("prompt composition failed, retrying with fallback prompt", "error", err)
		return s.completeFallback(ctx, req, ComposedPrompt{Category: CategoryFromCapital(req.Capital)})
	}

	text, err := s.completer.Complete(ctx, composed.Text)
	if err == nil {
		result := domain.AnalysisResult{RawText: text, HTML: markup.ToHTML(text), Fallback: false}
		s.finish(ctx, composed, result)
		return result, nil
	}

	slog.Warn("full analysis prompt failed, retrying with fallback prompt", "error", err)
	return s.completeFallback(ctx, req, composed)
}

// completeFallback is the single retry with the minimal prompt. It runs
// when either composition or the full-prompt completion failed.
func (s *AnalysisService) completeFallback(ctx context.Context, req domain.AnalysisRequest, composed ComposedPrompt) (domain.AnalysisResult, error) {
	text, err := s.completer.Complete(ctx, s.composer.Fallback(req))
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return domain.AnalysisResult{}, fmt.Errorf("completing analysis: %w", err)
	}

	result := domain.AnalysisResult{RawText: text, HTML: markup.ToHTML(text), Fallback: true}
	s.finish(ctx, composed, result)
	return result, nil
}

// finish records metrics and publishes the completion event. Publishing
// is best-effort: broker trouble never fails an analysis the user
// already has in hand.
func (s *AnalysisService) finish(ctx context.Context, composed ComposedPrompt, result domain.AnalysisResult) {
	outcome := "ok"
	if result.Fallback {
		outcome = "fallback"
	}
	metrics.AnalysesTotal.WithLabelValues(outcome).Inc()

	if s.events == nil {
		return
	}
	evt := &domain.AnalysisEvent{
		Time:     time.Now(),
		Source:   composed.Location.Source,
		Category: composed.Category,
		Fallback: result.Fallback,
		Chars:    len(result.RawText),
	}
	if err := s.events.PublishAnalysis(ctx, evt); err != nil {
		slog.Warn("failed to publish analysis event", "error", err)
	}
}
