package dto

import "Sentiscope/internal/model"

// LabelCountsDTO 三个标签的计数，缺失的标签为 0
type LabelCountsDTO struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SentimentDistributionDTO 整体情感分布
type SentimentDistributionDTO struct {
	LabelCountsDTO
	Total           int `json:"total"`
	PercentPositive int `json:"percent_positive"`
	PercentNegative int `json:"percent_negative"`
	PercentNeutral  int `json:"percent_neutral"`
}

// PlatformSentimentDTO 单个平台的情感分布
type PlatformSentimentDTO struct {
	Platform model.Platform `json:"platform"`
	LabelCountsDTO
}

// PostSentimentDTO 单个帖子的评论情感分布
type PostSentimentDTO struct {
	PostID   int64          `json:"post_id"`
	Platform model.Platform `json:"platform"`
	PostText string         `json:"post_text"`
	LabelCountsDTO
}

// SummaryDTO 关键指标
type SummaryDTO struct {
	TotalPosts      int     `json:"total_posts"`
	TotalComments   int     `json:"total_comments"`
	AvgEngagement   float64 `json:"avg_engagement"`
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Neutral         int     `json:"neutral"`
	PercentPositive int     `json:"percent_positive"`
	PercentNegative int     `json:"percent_negative"`
}

// TopicCountDTO 单个关键词的命中评论数
type TopicCountDTO struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TopicsDTO 话题统计
type TopicsDTO struct {
	Negative bool             `json:"negative"`
	Topics   []*TopicCountDTO `json:"topics"`
}

// TopicsQueryDTO keywords 为逗号分隔，空时使用配置的关键词
type TopicsQueryDTO struct {
	Negative bool   `form:"negative"`
	Keywords string `form:"keywords" binding:"omitempty,max=512"`
}

// CriticalQueryDTO 负面评论列表查询，limit 为 0 表示不限制
type CriticalQueryDTO struct {
	PostID *int64 `form:"post_id"`
	Urgent bool   `form:"urgent"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
