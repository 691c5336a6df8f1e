package scorer

import (
	"context"
	"strings"

	"github.com/jonreiter/govader"
)

// VaderScorer scores text with the VADER lexicon. The compound score is
// already normalised to [-1, 1].
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon. The analyzer is read-only after
// construction, so one instance is shared by all requests.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderScorer) Name() string { return string(KindVader) }

func (s *VaderScorer) Score(_ context.Context, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return s.analyzer.PolarityScores(text).Compound, nil
}

// compile-time check that VaderScorer implements Scorer
var _ Scorer = (*VaderScorer)(nil)
