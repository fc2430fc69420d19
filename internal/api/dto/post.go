package dto

import "Sentiscope/internal/model"

// PostDTO 帖子
type PostDTO struct {
	PostID   int64          `json:"post_id"`
	Platform model.Platform `json:"platform"`
	PostText string         `json:"post_text"`
	PostType string         `json:"post_type"`
	Likes    int            `json:"likes"`
	Shares   int            `json:"shares"`
	Comments int            `json:"comments"`
	Date     string         `json:"date"`
}

// CommentDTO 已打分的评论
type CommentDTO struct {
	CommentID      int64                `json:"comment_id"`
	PostID         int64                `json:"post_id"`
	Platform       model.Platform       `json:"platform"`
	CommentText    string               `json:"comment_text"`
	User           string               `json:"user"`
	Likes          int                  `json:"likes"`
	Date           string               `json:"date"`
	Sentiment      float64              `json:"sentiment"`
	SentimentLabel model.SentimentLabel `json:"sentiment_label"`
}

// PostDetailDTO 帖子详情：正文、评论与评论情感分布
type PostDetailDTO struct {
	Post      *PostDTO       `json:"post"`
	Comments  []*CommentDTO  `json:"comments"`
	Sentiment LabelCountsDTO `json:"sentiment"`
}

// PostOptionDTO 帖子选择列表项
type PostOptionDTO struct {
	PostID   int64          `json:"post_id"`
	Platform model.Platform `json:"platform"`
	PostType string         `json:"post_type"`
	PostText string         `json:"post_text"`
}

// EngagementPointDTO 互动时间线上的一个点
type EngagementPointDTO struct {
	PostID   int64  `json:"post_id"`
	Date     string `json:"date"`
	Likes    int    `json:"likes"`
	Shares   int    `json:"shares"`
	Comments int    `json:"comments"`
}

// PostLookupDTO 按正文精确查找帖子
type PostLookupDTO struct {
	Text string `form:"text" binding:"required,max=2048"`
}
