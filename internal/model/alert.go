package model

import "time"

// CriticalAlert 新数据集中一条负面评论的告警消息
type CriticalAlert struct {
	Fingerprint string         `json:"fingerprint"`
	CommentID   int64          `json:"comment_id"`
	PostID      int64          `json:"post_id"`
	Platform    Platform       `json:"platform"`
	CommentText string         `json:"comment_text"`
	User        string         `json:"user"`
	Likes       int            `json:"likes"`
	Sentiment   float64        `json:"sentiment"`
	Label       SentimentLabel `json:"sentiment_label"`
	Date        string         `json:"date"`
	DetectedAt  time.Time      `json:"detected_at"`
}

// NewCriticalAlert 由已增强的评论构造告警
func NewCriticalAlert(fingerprint string, c Comment, detectedAt time.Time) CriticalAlert {
	return CriticalAlert{
		Fingerprint: fingerprint,
		CommentID:   c.CommentID,
		PostID:      c.PostID,
		Platform:    c.Platform,
		CommentText: c.CommentText,
		User:        c.User,
		Likes:       c.Likes,
		Sentiment:   c.Sentiment,
		Label:       c.SentimentLabel,
		Date:        c.Date.Format(time.DateOnly),
		DetectedAt:  detectedAt,
	}
}
