package model

import (
	"time"
)

// Comment 对帖子的一条评论，Sentiment / SentimentLabel 由加载阶段计算
type Comment struct {
	CommentID   int64     `json:"comment_id"`
	PostID      int64     `json:"post_id"`
	Platform    Platform  `json:"platform"`
	CommentText string    `json:"comment_text"`
	User        string    `json:"user"`
	Likes       int       `json:"likes"`
	Date        time.Time `json:"date"`

	Sentiment      float64        `json:"sentiment"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
}
