package repository

import (
	"context"

	"Sentiscope/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SentimentSnapshotRepo interface {
	// SaveSnapshot 按 fingerprint 幂等写入
	SaveSnapshot(ctx context.Context, snapshot *model.SentimentSnapshot) error
	// ExistsFingerprint 该指纹的数据集是否已经记录过
	ExistsFingerprint(ctx context.Context, fingerprint string) (bool, error)
	// ListLatest 按加载时间倒序返回最近 limit 条
	ListLatest(ctx context.Context, limit int) ([]*model.SentimentSnapshot, error)
}

type sentimentSnapshotRepoImpl struct {
	db *gorm.DB
}

func NewSentimentSnapshotRepo(db *gorm.DB) SentimentSnapshotRepo {
	return &sentimentSnapshotRepoImpl{db: db}
}

// SaveSnapshot 同一份数据集重复加载时只刷新加载时间
func (r *sentimentSnapshotRepoImpl) SaveSnapshot(ctx context.Context, snapshot *model.SentimentSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fingerprint"}},
		DoUpdates: clause.AssignmentColumns([]string{"loaded_at"}),
	}).Create(snapshot).Error
}

func (r *sentimentSnapshotRepoImpl) ExistsFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SentimentSnapshot{}).
		Where("fingerprint = ?", fingerprint).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sentimentSnapshotRepoImpl) ListLatest(ctx context.Context, limit int) ([]*model.SentimentSnapshot, error) {
	snapshots := make([]*model.SentimentSnapshot, 0, limit)
	result := r.db.WithContext(ctx).
		Order("loaded_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}
