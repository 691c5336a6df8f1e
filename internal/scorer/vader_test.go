package scorer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evalease/sentiment-service/internal/scorer"
)

func TestVaderScorer_Polarity(t *testing.T) {
	s := scorer.NewVaderScorer()
	ctx := context.Background()

	pos, err := s.Score(ctx, "I love this!")
	require.NoError(t, err)
	assert.Greater(t, pos, 0.1)

	neg, err := s.Score(ctx, "I hate this.")
	require.NoError(t, err)
	assert.Less(t, neg, -0.1)

	neutral, err := s.Score(ctx, "It is a table.")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, neutral, 0.1)
}

func TestVaderScorer_EmptyText(t *testing.T) {
	score, err := scorer.NewVaderScorer().Score(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestVaderScorer_RangeBounded(t *testing.T) {
	s := scorer.NewVaderScorer()
	for _, text := range []string{
		"GREAT GREAT GREAT!!! amazing wonderful fantastic superb love love love",
		"horrible terrible awful hate hate disgusting worst ever!!!",
	} {
		score, err := s.Score(context.Background(), text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
