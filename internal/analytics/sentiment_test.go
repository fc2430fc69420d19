package analytics

import (
	"testing"

	"Sentiscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentDistribution(t *testing.T) {
	ds := fixtureDataset()
	dist := SentimentDistribution(ds.Comments)
	assert.Equal(t, LabelCounts{
		model.SentimentPositive: 1,
		model.SentimentNegative: 4,
		model.SentimentNeutral:  1,
	}, dist)
	assert.Equal(t, len(ds.Comments), dist.Total())
}

func TestSentimentDistributionZeroFills(t *testing.T) {
	dist := SentimentDistribution(nil)
	assert.Len(t, dist, 3)
	assert.Equal(t, 0, dist[model.SentimentPositive])
	assert.Equal(t, 0, dist.Total())

	dist = SentimentDistribution([]model.Comment{{SentimentLabel: model.SentimentNeutral}})
	assert.Equal(t, LabelCounts{model.SentimentPositive: 0, model.SentimentNegative: 0, model.SentimentNeutral: 1}, dist)
}

func TestSentimentByPlatform(t *testing.T) {
	ds := fixtureDataset()
	rows := SentimentByPlatform(ds.Comments)
	require.Len(t, rows, 3)

	assert.Equal(t, model.PlatformLinkedIn, rows[0].Platform)
	assert.Equal(t, LabelCounts{model.SentimentPositive: 1, model.SentimentNegative: 2, model.SentimentNeutral: 0}, rows[0].Counts)
	assert.Equal(t, model.PlatformTwitter, rows[1].Platform)
	assert.Equal(t, LabelCounts{model.SentimentPositive: 0, model.SentimentNegative: 1, model.SentimentNeutral: 1}, rows[1].Counts)
	// 孤儿评论仍计入评论维度的统计
	assert.Equal(t, model.PlatformFacebook, rows[2].Platform)
	assert.Equal(t, 1, rows[2].Counts[model.SentimentNegative])

	perPlatform := map[model.Platform]int{}
	for _, c := range ds.Comments {
		perPlatform[c.Platform]++
	}
	for _, r := range rows {
		assert.Len(t, r.Counts, 3)
		assert.Equal(t, perPlatform[r.Platform], r.Counts.Total())
	}
}

func TestSentimentByPlatformEmpty(t *testing.T) {
	rows := SentimentByPlatform(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFilterByLabel(t *testing.T) {
	neg := FilterByLabel(fixtureDataset().Comments, model.SentimentNegative)
	require.Len(t, neg, 4)
	assert.Equal(t, []int64{1, 2, 5, 6}, []int64{neg[0].CommentID, neg[1].CommentID, neg[2].CommentID, neg[3].CommentID})
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 66, Percent(2, 3))
	assert.Equal(t, 100, Percent(3, 3))
	assert.Equal(t, 16, Percent(1, 6))
}
