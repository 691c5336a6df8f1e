package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evalease/sentiment-service/internal/domain"
	"github.com/evalease/sentiment-service/internal/scorer"
)

// Hooks lets callers observe analyses without the service importing metrics.
// OnAnalyzed is optional.
type Hooks struct {
	OnAnalyzed func(domain.Analysis)
}

// SentimentService validates input, scores it and applies the fixed
// classification thresholds. It holds no per-request state.
type SentimentService struct {
	scorer     scorer.Scorer
	logger     *zap.Logger
	onAnalyzed func(domain.Analysis)
}

func NewSentimentService(s scorer.Scorer, logger *zap.Logger, hooks Hooks) *SentimentService {
	onAnalyzed := hooks.OnAnalyzed
	if onAnalyzed == nil {
		onAnalyzed = func(domain.Analysis) {}
	}
	return &SentimentService{scorer: s, logger: logger, onAnalyzed: onAnalyzed}
}

// Analyze classifies req.Text. It returns domain.ErrMissingText when the
// request carries no text.
func (s *SentimentService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (domain.Analysis, error) {
	if err := req.Validate(); err != nil {
		return domain.Analysis{}, err
	}

	raw, err := s.scorer.Score(ctx, *req.Text)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("%w: %s: %w", domain.ErrScorerFailed, s.scorer.Name(), err)
	}

	a := domain.NewAnalysis(raw)
	s.onAnalyzed(a)

	s.logger.Debug("text classified",
		zap.String("scorer", s.scorer.Name()),
		zap.String("polarity", string(a.Polarity)),
		zap.Float64("score", a.Score),
		zap.Int("text_len", len(*req.Text)),
	)
	return a, nil
}

// ScorerName reports which scorer chain is active.
func (s *SentimentService) ScorerName() string {
	return s.scorer.Name()
}
