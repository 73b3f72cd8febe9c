package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"insight-agent/internal/domain/entity"
	"insight-agent/internal/domain/repository"
)

// GuardedAnalyzer turns analyzer panics into ErrInternalServer so a faulty
// analyzer can never take the gateway down.
type GuardedAnalyzer struct {
	analyzer repository.TextAnalyzer
}

func NewGuardedAnalyzer(analyzer repository.TextAnalyzer) *GuardedAnalyzer {
	return &GuardedAnalyzer{analyzer: analyzer}
}

// Analyze skips the work when the caller has already gone away.
func (g *GuardedAnalyzer) Analyze(ctx context.Context, text string) (result entity.AnalysisResult, err error) {
	if err := ctx.Err(); err != nil {
		return entity.AnalysisResult{}, fmt.Errorf("%w: %w", entity.ErrInternalServer, err)
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("analyzer panicked", "panic", r)
			result = entity.AnalysisResult{}
			err = fmt.Errorf("%w: analyzer panic: %v", entity.ErrInternalServer, r)
		}
	}()
	return g.analyzer.Analyze(text), nil
}
