package scorer

import (
	"context"
	"math"
	"strings"
	"unicode"
)

var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "useful", "helpful", "clear",
		"well", "positive", "happy", "satisfied", "learned", "informative",
	}
	negativeWords = []string{
		"bad", "poor", "confusing", "boring", "slow", "fast", "unclear", "hard",
		"negative", "disappointed", "dissatisfied", "waste", "long",
	}
)

// KeywordScorer is a small word-list scorer tuned for training feedback.
// Each listed word counts once no matter how often it occurs.
type KeywordScorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{
		positive: toSet(positiveWords),
		negative: toSet(negativeWords),
	}
}

func (s *KeywordScorer) Name() string { return string(KindKeyword) }

func (s *KeywordScorer) Score(_ context.Context, text string) (float64, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	seen := make(map[string]struct{}, len(words))
	var pos, neg int
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := s.positive[w]; ok {
			pos++
		}
		if _, ok := s.negative[w]; ok {
			neg++
		}
	}

	switch {
	case pos > neg:
		return 0.2 + math.Min(0.8, float64(pos-neg)*0.1), nil
	case neg > pos:
		return -0.2 - math.Min(0.8, float64(neg-pos)*0.1), nil
	default:
		return 0, nil
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var _ Scorer = (*KeywordScorer)(nil)
