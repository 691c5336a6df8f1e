package scorer

import "context"

// FallbackScorer tries primary first and scores with secondary whenever
// primary returns an error. A caller-side cancellation is not retried.
type FallbackScorer struct {
	primary    Scorer
	secondary  Scorer
	onFallback func(err error)
}

// NewFallbackScorer wires a primary/secondary pair. onFallback is optional.
func NewFallbackScorer(primary, secondary Scorer, onFallback func(err error)) *FallbackScorer {
	if onFallback == nil {
		onFallback = func(error) {}
	}
	return &FallbackScorer{primary: primary, secondary: secondary, onFallback: onFallback}
}

func (s *FallbackScorer) Name() string {
	return s.primary.Name() + "+" + s.secondary.Name()
}

func (s *FallbackScorer) Score(ctx context.Context, text string) (float64, error) {
	score, err := s.primary.Score(ctx, text)
	if err == nil {
		return score, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	s.onFallback(err)
	return s.secondary.Score(ctx, text)
}

var _ Scorer = (*FallbackScorer)(nil)
