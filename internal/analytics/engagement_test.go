package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementSeries(t *testing.T) {
	ds := fixtureDataset()
	series := EngagementSeries(ds.Posts)
	require.Len(t, series, 3)

	// 日期升序，同日按输入顺序
	assert.Equal(t, int64(2), series[0].PostID)
	assert.Equal(t, int64(1), series[1].PostID)
	assert.Equal(t, int64(3), series[2].PostID)
	assert.Equal(t, day(1), series[0].Date)
	assert.Equal(t, 50, series[0].Likes)
	assert.Equal(t, 20, series[0].Shares)
	assert.Equal(t, 2, series[0].Comments)

	// 输入不被重排
	assert.Equal(t, int64(1), ds.Posts[0].PostID)
}

func TestEngagementSeriesEmpty(t *testing.T) {
	assert.Empty(t, EngagementSeries(nil))
}
