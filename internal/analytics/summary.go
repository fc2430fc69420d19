package analytics

import (
	"Sentiscope/internal/model"
)

// Summary 仪表盘顶部的关键指标
type Summary struct {
	TotalPosts      int     `json:"total_posts"`
	TotalComments   int     `json:"total_comments"`
	AvgEngagement   float64 `json:"avg_engagement"`
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Neutral         int     `json:"neutral"`
	PercentPositive int     `json:"percent_positive"`
	PercentNegative int     `json:"percent_negative"`
}

// AvgEngagement likes、shares、comments 三列各自求和后的平均值
func AvgEngagement(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	var likes, shares, comments int
	for _, p := range posts {
		likes += p.Likes
		shares += p.Shares
		comments += p.Comments
	}
	return float64(likes+shares+comments) / 3
}

func Summarize(ds *model.Dataset) Summary {
	dist := SentimentDistribution(ds.Comments)
	total := len(ds.Comments)
	return Summary{
		TotalPosts:      len(ds.Posts),
		TotalComments:   total,
		AvgEngagement:   AvgEngagement(ds.Posts),
		Positive:        dist[model.SentimentPositive],
		Negative:        dist[model.SentimentNegative],
		Neutral:         dist[model.SentimentNeutral],
		PercentPositive: Percent(dist[model.SentimentPositive], total),
		PercentNegative: Percent(dist[model.SentimentNegative], total),
	}
}
