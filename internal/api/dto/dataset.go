package dto

import "time"

// IntegrityWarningDTO 数据完整性告警
type IntegrityWarningDTO struct {
	Kind      string `json:"kind"`
	CommentID int64  `json:"comment_id"`
	PostID    int64  `json:"post_id"`
	Message   string `json:"message"`
}

// ThresholdsDTO 当前分类阈值
type ThresholdsDTO struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

// DatasetStatusDTO 当前数据集状态
type DatasetStatusDTO struct {
	Fingerprint        string                 `json:"fingerprint"`
	LoadedAt           time.Time              `json:"loaded_at"`
	Posts              int                    `json:"posts"`
	Comments           int                    `json:"comments"`
	OrphanComments     int                    `json:"orphan_comments"`
	CommentsBeforePost int                    `json:"comments_before_post"`
	Thresholds         ThresholdsDTO          `json:"thresholds"`
	Warnings           []*IntegrityWarningDTO `json:"warnings"`
}

// SnapshotDTO 历史快照
type SnapshotDTO struct {
	ID              uint64    `json:"id"`
	Fingerprint     string    `json:"fingerprint"`
	LoadedAt        time.Time `json:"loaded_at"`
	TotalPosts      int       `json:"total_posts"`
	TotalComments   int       `json:"total_comments"`
	PositiveCount   int       `json:"positive_count"`
	NegativeCount   int       `json:"negative_count"`
	NeutralCount    int       `json:"neutral_count"`
	PercentPositive int       `json:"percent_positive"`
	OrphanComments  int       `json:"orphan_comments"`
}

// SnapshotQueryDTO 快照列表查询
type SnapshotQueryDTO struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
