package analytics

import (
	"testing"

	"Sentiscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDetailByID(t *testing.T) {
	ds := fixtureDataset()
	detail, ok := PostDetailByID(ds, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1), detail.Post.PostID)
	require.Len(t, detail.Comments, 3)
	assert.Equal(t, LabelCounts{model.SentimentPositive: 1, model.SentimentNegative: 2, model.SentimentNeutral: 0}, detail.Sentiment)
}

func TestPostDetailWithoutComments(t *testing.T) {
	detail, ok := PostDetailByID(fixtureDataset(), 3)
	require.True(t, ok)
	assert.NotNil(t, detail.Comments)
	assert.Empty(t, detail.Comments)
	assert.Equal(t, 0, detail.Sentiment.Total())
}

func TestPostDetailExcludesOrphans(t *testing.T) {
	ds := fixtureDataset()
	_, ok := PostDetailByID(ds, 999)
	assert.False(t, ok)

	for _, p := range ds.Posts {
		detail, ok := PostDetailByID(ds, p.PostID)
		require.True(t, ok)
		for _, c := range detail.Comments {
			assert.NotEqual(t, int64(999), c.PostID)
		}
	}
	// 但孤儿评论出现在总体分布中
	assert.Equal(t, 4, SentimentDistribution(ds.Comments)[model.SentimentNegative])
}

func TestPostDetailByText(t *testing.T) {
	ds := fixtureDataset()
	detail, ok := PostDetailByText(ds, "Urgent: Zero-Day mitigation strategy for Azure")
	require.True(t, ok)
	assert.Equal(t, int64(2), detail.Post.PostID)
	assert.Len(t, detail.Comments, 2)

	_, ok = PostDetailByText(ds, "urgent: zero-day mitigation strategy for azure")
	assert.False(t, ok)
	_, ok = PostDetailByText(nil, "x")
	assert.False(t, ok)
}

func TestPostSentimentBreakdown(t *testing.T) {
	rows := PostSentimentBreakdown(fixtureDataset())
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].PostID)
	assert.Equal(t, LabelCounts{model.SentimentPositive: 1, model.SentimentNegative: 2, model.SentimentNeutral: 0}, rows[0].Counts)
	assert.Equal(t, int64(2), rows[1].PostID)
	assert.Equal(t, model.PlatformTwitter, rows[1].Platform)
	assert.Equal(t, LabelCounts{model.SentimentPositive: 0, model.SentimentNegative: 1, model.SentimentNeutral: 1}, rows[1].Counts)
}

func TestListPosts(t *testing.T) {
	opts := ListPosts(fixtureDataset())
	require.Len(t, opts, 3)
	assert.Equal(t, PostOption{PostID: 2, Platform: model.PlatformTwitter, PostType: "alert", PostText: "Urgent: Zero-Day mitigation strategy for Azure"}, opts[1])
	assert.Empty(t, ListPosts(nil))
}
