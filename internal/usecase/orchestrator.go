package usecase

import (
	"context"
	"log/slog"

	"insight-agent/internal/analyzer"
	"insight-agent/internal/domain/entity"
	"insight-agent/internal/domain/repository"
)

const previewRunes = 100

type Orchestrator struct {
	analyzer *GuardedAnalyzer
	limiter  repository.RequestLimiter
}

func NewOrchestrator(a repository.TextAnalyzer, limiter repository.RequestLimiter) *Orchestrator {
	return &Orchestrator{
		analyzer: NewGuardedAnalyzer(a),
		limiter:  limiter,
	}
}

// Execute validates the request, enforces the client's quota and runs the
// analysis. Returned errors match one of the entity sentinel errors.
func (u *Orchestrator) Execute(ctx context.Context, clientID string, req entity.AnalysisRequest) (*entity.AnalysisResponse, error) {
	// 1. Validate before touching anything else
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	// 2. Count against quota. A broken limiter backend must not block analysis.
	allowed, err := u.limiter.Allow(ctx, clientID)
	if err != nil {
		slog.Warn("rate limiter check failed, allowing request", "error", err)
		allowed = true
	}
	if !allowed {
		return nil, entity.ErrRateLimitExceeded
	}

	slog.Info("analyzing text", "preview", preview(req.Text))

	// 3. Analyze
	result, err := u.analyzer.Analyze(ctx, req.Text)
	if err != nil {
		slog.Error("error analyzing text", "error", err)
		return nil, err
	}

	slog.Info("analysis completed",
		"word_count", result.WordCount,
		"character_count", result.CharacterCount,
		"sentence_count", result.SentenceCount,
		"sentiment_score", result.SentimentScore,
	)

	return &entity.AnalysisResponse{
		OriginalText:   req.Text,
		AnalysisResult: result,
		Sentiment:      analyzer.Label(result.SentimentScore),
		Language:       entity.DefaultLanguage,
	}, nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
