package repository

import (
	"context"
	"insight-agent/internal/domain/entity"
)

type TextAnalyzer interface {
	Analyze(text string) entity.AnalysisResult
}

// RequestLimiter counts a client's request and reports whether it is within quota.
type RequestLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}
