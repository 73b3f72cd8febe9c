package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"insight-agent/internal/analyzer"
	"insight-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	mu    sync.Mutex
	allow bool
	err   error
	calls map[string]int
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{allow: true, calls: map[string]int{}}
}

func (f *fakeLimiter) Allow(_ context.Context, clientID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[clientID]++
	return f.allow, f.err
}

type countingAnalyzer struct {
	calls int
}

func (c *countingAnalyzer) Analyze(text string) entity.AnalysisResult {
	c.calls++
	return analyzer.Analyze(text)
}

type panicAnalyzer struct{}

func (panicAnalyzer) Analyze(string) entity.AnalysisResult {
	panic("boom")
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name string
		text string
		rule string
	}{
		{"empty", "", "required"},
		{"too long", strings.Repeat("a", entity.MaxTextLength+1), "max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(entity.AnalysisRequest{Text: tt.text})
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalidRequest)

			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "text", verr.Fields[0].Field)
			assert.Equal(t, tt.rule, verr.Fields[0].Rule)
		})
	}

	assert.NoError(t, ValidateRequest(entity.AnalysisRequest{Text: "x"}))
	assert.NoError(t, ValidateRequest(entity.AnalysisRequest{Text: " "}))
	assert.NoError(t, ValidateRequest(entity.AnalysisRequest{Text: strings.Repeat("a", entity.MaxTextLength)}))
	// 5000 two-byte runes is within bounds even though it is 10000 bytes
	assert.NoError(t, ValidateRequest(entity.AnalysisRequest{Text: strings.Repeat("é", entity.MaxTextLength)}))
}

func TestExecute(t *testing.T) {
	limiter := newFakeLimiter()
	orch := NewOrchestrator(analyzer.New(), limiter)

	resp, err := orch.Execute(context.Background(), "client-a", entity.AnalysisRequest{Text: "I love cloud engineering!"})
	require.NoError(t, err)

	assert.Equal(t, "I love cloud engineering!", resp.OriginalText)
	assert.Equal(t, 4, resp.WordCount)
	assert.Equal(t, 25, resp.CharacterCount)
	assert.Equal(t, 1, resp.SentenceCount)
	assert.Equal(t, 0.25, resp.SentimentScore)
	assert.Equal(t, analyzer.LabelPositive, resp.Sentiment)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, 1, limiter.calls["client-a"])
}

func TestExecuteInvalidSkipsAnalyzer(t *testing.T) {
	a := &countingAnalyzer{}
	limiter := newFakeLimiter()
	orch := NewOrchestrator(a, limiter)

	_, err := orch.Execute(context.Background(), "c", entity.AnalysisRequest{})
	assert.ErrorIs(t, err, entity.ErrInvalidRequest)
	assert.Zero(t, a.calls)
	assert.Empty(t, limiter.calls)
}

func TestExecuteRateLimited(t *testing.T) {
	a := &countingAnalyzer{}
	limiter := newFakeLimiter()
	limiter.allow = false
	orch := NewOrchestrator(a, limiter)

	_, err := orch.Execute(context.Background(), "c", entity.AnalysisRequest{Text: "hello"})
	assert.ErrorIs(t, err, entity.ErrRateLimitExceeded)
	assert.Zero(t, a.calls)
}

func TestExecuteLimiterFailureFailsOpen(t *testing.T) {
	limiter := newFakeLimiter()
	limiter.allow = false
	limiter.err = errors.New("connection refused")
	orch := NewOrchestrator(analyzer.New(), limiter)

	resp, err := orch.Execute(context.Background(), "c", entity.AnalysisRequest{Text: "Terrible awful bad"})
	require.NoError(t, err)
	assert.Equal(t, -1.0, resp.SentimentScore)
	assert.Equal(t, analyzer.LabelNegative, resp.Sentiment)
}

func TestExecuteAnalyzerPanic(t *testing.T) {
	orch := NewOrchestrator(panicAnalyzer{}, newFakeLimiter())

	resp, err := orch.Execute(context.Background(), "c", entity.AnalysisRequest{Text: "hello"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrInternalServer)
}

func TestGuardedAnalyzerRecoversPanic(t *testing.T) {
	res, err := NewGuardedAnalyzer(panicAnalyzer{}).Analyze(context.Background(), "hello")
	assert.ErrorIs(t, err, entity.ErrInternalServer)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, entity.AnalysisResult{}, res)
}

func TestGuardedAnalyzerCancelled(t *testing.T) {
	a := &countingAnalyzer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGuardedAnalyzer(a).Analyze(ctx, "hello")
	assert.ErrorIs(t, err, entity.ErrInternalServer)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, a.calls)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))

	long := strings.Repeat("ü", 150)
	got := preview(long)
	assert.Equal(t, strings.Repeat("ü", 100)+"...", got)
}
