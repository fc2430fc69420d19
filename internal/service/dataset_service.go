package service

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"sync"
	"time"

	"Sentiscope/internal/analytics"
	"Sentiscope/internal/api/dto"
	"Sentiscope/internal/dataset"
	"Sentiscope/internal/model"
	"Sentiscope/internal/pkg/consts"
	"Sentiscope/internal/repository"
	"Sentiscope/internal/sentiment"
)

// DatasetLoader 由 dataset.Loader 实现
type DatasetLoader interface {
	Load(ctx context.Context) (*model.Dataset, bool, error)
	Reload(ctx context.Context) (*model.Dataset, error)
	Current() *model.Dataset
	Thresholds() sentiment.Thresholds
}

// ViewCache 视图结果缓存，由 redis.JSONCache 实现
type ViewCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// AlertPublisher 负面评论告警出口，由 kafka.AlertProducer 实现
type AlertPublisher interface {
	PublishCritical(ctx context.Context, alerts []model.CriticalAlert) error
}

// AlertGuard 跨进程的告警去重，由 redis.AlertGuard 实现
type AlertGuard interface {
	MarkAlerted(ctx context.Context, commentID int64) (bool, error)
}

type DatasetOption func(*datasetServiceImpl)

// WithAlertGuard 每条评论只推送一次告警，重启后同样生效
func WithAlertGuard(g AlertGuard) DatasetOption {
	return func(s *datasetServiceImpl) {
		s.alertGuard = g
	}
}

type DatasetService interface {
	// Dataset 当前数据集，尚未加载时同步加载一次
	Dataset(ctx context.Context) (*model.Dataset, error)
	// Refresh 检查数据源，内容或阈值变化时重建
	Refresh(ctx context.Context) (*dto.DatasetStatusDTO, error)
	// Reload 强制重建
	Reload(ctx context.Context) (*dto.DatasetStatusDTO, error)
	// Status 当前数据集状态
	Status(ctx context.Context) (*dto.DatasetStatusDTO, error)
	// ListSnapshots 最近的汇总快照
	ListSnapshots(ctx context.Context, limit int) ([]*dto.SnapshotDTO, error)
}

type datasetServiceImpl struct {
	loader         DatasetLoader
	cache          ViewCache
	snapshotRepo   repository.SentimentSnapshotRepo
	publisher      AlertPublisher
	alertGuard     AlertGuard
	urgentKeywords []string
	now            func() time.Time

	// 串行化加载后的副作用，保证 prev 与新数据集一一对应
	mu   sync.Mutex
	prev *model.Dataset
}

// NewDatasetService cache、snapshotRepo、publisher 均可为 nil
func NewDatasetService(
	loader DatasetLoader,
	cache ViewCache,
	snapshotRepo repository.SentimentSnapshotRepo,
	publisher AlertPublisher,
	urgentKeywords []string,
	opts ...DatasetOption,
) DatasetService {
	s := &datasetServiceImpl{
		loader:         loader,
		cache:          cache,
		snapshotRepo:   snapshotRepo,
		publisher:      publisher,
		urgentKeywords: analytics.NormalizeKeywords(urgentKeywords),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *datasetServiceImpl) Dataset(ctx context.Context) (*model.Dataset, error) {
	if ds := s.loader.Current(); ds != nil {
		return ds, nil
	}
	ds, fresh, err := s.loader.Load(ctx)
	if err != nil {
		return nil, classifyLoadError(err)
	}
	if fresh {
		s.afterLoad(ctx, ds)
	}
	return ds, nil
}

func (s *datasetServiceImpl) Refresh(ctx context.Context) (*dto.DatasetStatusDTO, error) {
	ds, fresh, err := s.loader.Load(ctx)
	if err != nil {
		return nil, classifyLoadError(err)
	}
	if fresh {
		s.afterLoad(ctx, ds)
	}
	return s.status(ds), nil
}

func (s *datasetServiceImpl) Reload(ctx context.Context) (*dto.DatasetStatusDTO, error) {
	ds, err := s.loader.Reload(ctx)
	if err != nil {
		return nil, classifyLoadError(err)
	}
	s.afterLoad(ctx, ds)
	return s.status(ds), nil
}

func (s *datasetServiceImpl) Status(ctx context.Context) (*dto.DatasetStatusDTO, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return s.status(ds), nil
}

func (s *datasetServiceImpl) ListSnapshots(ctx context.Context, limit int) ([]*dto.SnapshotDTO, error) {
	if s.snapshotRepo == nil {
		return []*dto.SnapshotDTO{}, nil
	}
	if limit <= 0 {
		limit = consts.DefaultSnapshotLimit
	}
	if limit > consts.MaxSnapshotLimit {
		limit = consts.MaxSnapshotLimit
	}
	snapshots, err := s.snapshotRepo.ListLatest(ctx, limit)
	if err != nil {
		log.ErrorContext(ctx, "list sentiment snapshots error", "err", err)
		return nil, UnExpectedError
	}
	return toSnapshotDTOs(snapshots), nil
}

func (s *datasetServiceImpl) status(ds *model.Dataset) *dto.DatasetStatusDTO {
	th := s.loader.Thresholds()
	return &dto.DatasetStatusDTO{
		Fingerprint:        ds.Fingerprint,
		LoadedAt:           ds.LoadedAt,
		Posts:              len(ds.Posts),
		Comments:           len(ds.Comments),
		OrphanComments:     dataset.CountWarnings(ds.Warnings, model.WarningOrphanComment),
		CommentsBeforePost: dataset.CountWarnings(ds.Warnings, model.WarningCommentBeforePost),
		Thresholds:         dto.ThresholdsDTO{Positive: th.Positive, Negative: th.Negative},
		Warnings:           toWarningDTOs(ds.Warnings),
	}
}

// afterLoad 新数据集生效后：清理旧视图缓存、写快照、推送新增的紧急负面评论。
// 任何一步失败都只记录日志。
func (s *datasetServiceImpl) afterLoad(ctx context.Context, ds *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.prev
	// 并发的 Refresh 与 Reload 可能乱序到达，较旧的数据集直接忽略
	if prev != nil && ds.LoadedAt.Before(prev.LoadedAt) {
		log.InfoContext(ctx, "skip stale dataset", "fingerprint", ds.Fingerprint, "current", prev.Fingerprint)
		return
	}
	s.prev = ds

	if s.cache != nil && prev != nil && prev.Fingerprint != ds.Fingerprint {
		if err := s.cache.DeletePrefix(ctx, consts.DashboardViewKey+prev.Fingerprint); err != nil {
			log.WarnContext(ctx, "evict stale dashboard views error", "fingerprint", prev.Fingerprint, "err", err)
		}
	}

	// 进程重启后的首次加载：快照已存在说明这份数据集的告警推送过
	alerted := false
	if prev == nil && s.snapshotRepo != nil {
		exists, err := s.snapshotRepo.ExistsFingerprint(ctx, ds.Fingerprint)
		if err != nil {
			log.WarnContext(ctx, "check sentiment snapshot error", "fingerprint", ds.Fingerprint, "err", err)
		}
		alerted = exists
	}

	if s.snapshotRepo != nil {
		if err := s.snapshotRepo.SaveSnapshot(ctx, newSnapshot(ds)); err != nil {
			log.ErrorContext(ctx, "save sentiment snapshot error", "fingerprint", ds.Fingerprint, "err", err)
		}
	}

	if s.publisher == nil {
		return
	}
	if alerted {
		log.InfoContext(ctx, "critical alerts already published for dataset", "fingerprint", ds.Fingerprint)
		return
	}
	alerts := s.newAlerts(ctx, prev, ds)
	if len(alerts) > 0 {
		if err := s.publisher.PublishCritical(ctx, alerts); err != nil {
			log.ErrorContext(ctx, "publish critical alerts error", "count", len(alerts), "err", err)
		}
	}
}

// newAlerts 含紧急关键词、且上一份数据集中没有、且未推送过的负面评论
func (s *datasetServiceImpl) newAlerts(ctx context.Context, prev, ds *model.Dataset) []model.CriticalAlert {
	seen := make(map[int64]struct{})
	if prev != nil {
		for _, c := range analytics.FilterByLabel(prev.Comments, model.SentimentNegative) {
			seen[c.CommentID] = struct{}{}
		}
	}

	feed := analytics.CriticalFeed(ds.Comments, analytics.CriticalQuery{UrgentKeywords: s.urgentKeywords})
	now := s.now()
	alerts := make([]model.CriticalAlert, 0)
	for _, c := range feed {
		if _, ok := seen[c.CommentID]; ok {
			continue
		}
		if s.alertGuard != nil {
			first, err := s.alertGuard.MarkAlerted(ctx, c.CommentID)
			if err != nil {
				log.WarnContext(ctx, "mark critical alert error", "comment_id", c.CommentID, "err", err)
			} else if !first {
				continue
			}
		}
		alerts = append(alerts, model.NewCriticalAlert(ds.Fingerprint, c, now))
	}
	return alerts
}

// classifyLoadError 结构性错误与数据源不可用分别映射到不同的业务错误，保留原始信息
func classifyLoadError(err error) error {
	if errors.Is(err, dataset.ErrMalformedInput) {
		return fmt.Errorf("%w: %v", ErrDatasetMalformed, err)
	}
	return fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
}
