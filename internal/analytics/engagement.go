package analytics

import (
	"sort"
	"time"

	"Sentiscope/internal/model"
)

// EngagementPoint 时间线上的一个帖子
type EngagementPoint struct {
	PostID   int64     `json:"post_id"`
	Date     time.Time `json:"date"`
	Likes    int       `json:"likes"`
	Shares   int       `json:"shares"`
	Comments int       `json:"comments"`
}

// EngagementSeries 按日期升序排列，同日保持输入顺序
func EngagementSeries(posts []model.Post) []EngagementPoint {
	out := make([]EngagementPoint, len(posts))
	for i, p := range posts {
		out[i] = EngagementPoint{
			PostID:   p.PostID,
			Date:     p.Date,
			Likes:    p.Likes,
			Shares:   p.Shares,
			Comments: p.Comments,
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
