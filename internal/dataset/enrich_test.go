package dataset

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Sentiscope/internal/model"
	"Sentiscope/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestComments(t *testing.T) []model.Comment {
	t.Helper()
	comments, err := ParseComments(strings.NewReader(commentsCSV), "comments.csv")
	require.NoError(t, err)
	return comments
}

func TestEnrichAttachesScoreAndLabel(t *testing.T) {
	raw := parseTestComments(t)
	out, err := Enrich(context.Background(), raw, sentiment.NewLexicon(), sentiment.DefaultThresholds(), nil, 2)
	require.NoError(t, err)
	require.Len(t, out, len(raw))

	want := []model.SentimentLabel{
		model.SentimentPositive,
		model.SentimentNegative,
		model.SentimentNeutral,
		model.SentimentNegative,
		model.SentimentNegative,
	}
	for i, c := range out {
		assert.Equal(t, want[i], c.SentimentLabel, c.CommentText)
		assert.GreaterOrEqual(t, c.Sentiment, -1.0)
		assert.LessOrEqual(t, c.Sentiment, 1.0)
		// 其余字段保持不变
		expected := raw[i]
		expected.Sentiment = c.Sentiment
		expected.SentimentLabel = c.SentimentLabel
		assert.Equal(t, expected, c)
	}
	// 入参不被修改
	assert.Empty(t, raw[0].SentimentLabel)
}

func TestEnrichIsIdempotent(t *testing.T) {
	raw := parseTestComments(t)
	first, err := Enrich(context.Background(), raw, sentiment.NewLexicon(), sentiment.DefaultThresholds(), nil, 4)
	require.NoError(t, err)
	second, err := Enrich(context.Background(), raw, sentiment.NewLexicon(), sentiment.DefaultThresholds(), nil, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnrichScoresDistinctTextsOnce(t *testing.T) {
	comments := []model.Comment{
		{CommentID: 1, CommentText: "good"},
		{CommentID: 2, CommentText: "good"},
		{CommentID: 3, CommentText: "bad"},
	}
	scorer := &countingScorer{fn: sentiment.NewLexicon().Score}
	cache := NewScoreCache()

	_, err := Enrich(context.Background(), comments, scorer, sentiment.DefaultThresholds(), cache, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), scorer.calls.Load())
	assert.Equal(t, 2, cache.Len())

	_, err = Enrich(context.Background(), comments, scorer, sentiment.DefaultThresholds(), cache, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), scorer.calls.Load())
}

func TestEnrichClampsScores(t *testing.T) {
	comments := []model.Comment{{CommentID: 1, CommentText: "x"}}
	out, err := Enrich(context.Background(), comments, sentiment.ScorerFunc(func(string) float64 { return 4 }), sentiment.DefaultThresholds(), nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, out[0].Sentiment)
	assert.Equal(t, model.SentimentPositive, out[0].SentimentLabel)
}

type failingScorer struct{}

func (failingScorer) Polarity(context.Context, string) (float64, error) {
	return 0, errors.New("model offline")
}

func TestEnrichPropagatesScorerError(t *testing.T) {
	comments := []model.Comment{{CommentID: 1, CommentText: "x"}}
	out, err := Enrich(context.Background(), comments, failingScorer{}, sentiment.DefaultThresholds(), nil, 1)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "model offline")
}

func TestEnrichEmpty(t *testing.T) {
	out, err := Enrich(context.Background(), nil, sentiment.NewLexicon(), sentiment.DefaultThresholds(), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}
