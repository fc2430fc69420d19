package model

import (
	"time"
)

// SentimentSnapshot 每次加载出新数据集时记录的一条汇总快照
type SentimentSnapshot struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Fingerprint     string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_fingerprint" json:"fingerprint"`
	LoadedAt        time.Time `gorm:"not null;index:idx_loaded_at" json:"loaded_at"`
	TotalPosts      int       `gorm:"not null;default:0" json:"total_posts"`
	TotalComments   int       `gorm:"not null;default:0" json:"total_comments"`
	PositiveCount   int       `gorm:"not null;default:0" json:"positive_count"`
	NegativeCount   int       `gorm:"not null;default:0" json:"negative_count"`
	NeutralCount    int       `gorm:"not null;default:0" json:"neutral_count"`
	PercentPositive int       `gorm:"not null;default:0" json:"percent_positive"`
	OrphanComments  int       `gorm:"not null;default:0" json:"orphan_comments"`
	CreatedAt       time.Time `json:"created_at"`
}

func (SentimentSnapshot) TableName() string {
	return "sentiment_snapshots"
}
