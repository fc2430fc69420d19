package service

import (
	"context"
	log "log/slog"
	"strings"
	"time"

	"Sentiscope/internal/analytics"
	"Sentiscope/internal/api/dto"
	"Sentiscope/internal/model"
	"Sentiscope/internal/pkg/consts"
)

type DashboardService interface {
	// GetSummary 关键指标
	GetSummary(ctx context.Context) (*dto.SummaryDTO, error)
	// GetSentimentDistribution 全部评论的情感分布，孤儿评论计入
	GetSentimentDistribution(ctx context.Context) (*dto.SentimentDistributionDTO, error)
	// GetSentimentByPlatform 按平台的情感分布
	GetSentimentByPlatform(ctx context.Context) ([]*dto.PlatformSentimentDTO, error)
	// GetPostSentiment 每个有评论的帖子的情感分布
	GetPostSentiment(ctx context.Context) ([]*dto.PostSentimentDTO, error)
	// GetEngagementTimeline 按日期升序的帖子互动数据
	GetEngagementTimeline(ctx context.Context) ([]*dto.EngagementPointDTO, error)
	// ListPosts 帖子选择列表
	ListPosts(ctx context.Context) ([]*dto.PostOptionDTO, error)
	// GetPostDetail 按 id 获取帖子详情
	GetPostDetail(ctx context.Context, postID int64) (*dto.PostDetailDTO, error)
	// GetPostDetailByText 按正文获取帖子详情
	GetPostDetailByText(ctx context.Context, text string) (*dto.PostDetailDTO, error)
	// GetTopics 关键词命中统计，keywords 为空时使用默认关键词
	GetTopics(ctx context.Context, negative bool, keywords []string) (*dto.TopicsDTO, error)
	// GetCriticalFeed 负面评论，按点赞数降序
	GetCriticalFeed(ctx context.Context, q *dto.CriticalQueryDTO) ([]*dto.CommentDTO, error)
}

// DashboardOptions 视图层的可配置项
type DashboardOptions struct {
	Keywords       []string
	UrgentKeywords []string
	CacheTTL       time.Duration
}

type dashboardServiceImpl struct {
	datasetSvc DatasetService
	cache      ViewCache
	opts       DashboardOptions
}

// NewDashboardService cache 为 nil 时每次直接计算
func NewDashboardService(datasetSvc DatasetService, cache ViewCache, opts DashboardOptions) DashboardService {
	opts.Keywords = analytics.NormalizeKeywords(opts.Keywords)
	opts.UrgentKeywords = analytics.NormalizeKeywords(opts.UrgentKeywords)
	return &dashboardServiceImpl{
		datasetSvc: datasetSvc,
		cache:      cache,
		opts:       opts,
	}
}

func (s *dashboardServiceImpl) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	return cachedView(ctx, s, consts.ViewSummary, func(ds *model.Dataset) *dto.SummaryDTO {
		sum := dto.SummaryDTO(analytics.Summarize(ds))
		return &sum
	})
}

func (s *dashboardServiceImpl) GetSentimentDistribution(ctx context.Context) (*dto.SentimentDistributionDTO, error) {
	return cachedView(ctx, s, consts.ViewDistribution, func(ds *model.Dataset) *dto.SentimentDistributionDTO {
		dist := analytics.SentimentDistribution(ds.Comments)
		total := dist.Total()
		return &dto.SentimentDistributionDTO{
			LabelCountsDTO:  toLabelCountsDTO(dist),
			Total:           total,
			PercentPositive: analytics.Percent(dist[model.SentimentPositive], total),
			PercentNegative: analytics.Percent(dist[model.SentimentNegative], total),
			PercentNeutral:  analytics.Percent(dist[model.SentimentNeutral], total),
		}
	})
}

func (s *dashboardServiceImpl) GetSentimentByPlatform(ctx context.Context) ([]*dto.PlatformSentimentDTO, error) {
	return cachedView(ctx, s, consts.ViewPlatform, func(ds *model.Dataset) []*dto.PlatformSentimentDTO {
		res := make([]*dto.PlatformSentimentDTO, 0)
		for _, p := range analytics.SentimentByPlatform(ds.Comments) {
			res = append(res, &dto.PlatformSentimentDTO{
				Platform:       p.Platform,
				LabelCountsDTO: toLabelCountsDTO(p.Counts),
			})
		}
		return res
	})
}

func (s *dashboardServiceImpl) GetPostSentiment(ctx context.Context) ([]*dto.PostSentimentDTO, error) {
	return cachedView(ctx, s, consts.ViewPostSentiment, func(ds *model.Dataset) []*dto.PostSentimentDTO {
		res := make([]*dto.PostSentimentDTO, 0)
		for _, p := range analytics.PostSentimentBreakdown(ds) {
			res = append(res, &dto.PostSentimentDTO{
				PostID:         p.PostID,
				Platform:       p.Platform,
				PostText:       p.PostText,
				LabelCountsDTO: toLabelCountsDTO(p.Counts),
			})
		}
		return res
	})
}

func (s *dashboardServiceImpl) GetEngagementTimeline(ctx context.Context) ([]*dto.EngagementPointDTO, error) {
	return cachedView(ctx, s, consts.ViewEngagement, func(ds *model.Dataset) []*dto.EngagementPointDTO {
		res := make([]*dto.EngagementPointDTO, 0)
		for _, p := range analytics.EngagementSeries(ds.Posts) {
			res = append(res, &dto.EngagementPointDTO{
				PostID:   p.PostID,
				Date:     p.Date.Format(time.DateOnly),
				Likes:    p.Likes,
				Shares:   p.Shares,
				Comments: p.Comments,
			})
		}
		return res
	})
}

func (s *dashboardServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostOptionDTO, error) {
	return cachedView(ctx, s, consts.ViewPostList, func(ds *model.Dataset) []*dto.PostOptionDTO {
		res := make([]*dto.PostOptionDTO, 0)
		for _, p := range analytics.ListPosts(ds) {
			res = append(res, &dto.PostOptionDTO{
				PostID:   p.PostID,
				Platform: p.Platform,
				PostType: p.PostType,
				PostText: p.PostText,
			})
		}
		return res
	})
}

func (s *dashboardServiceImpl) GetPostDetail(ctx context.Context, postID int64) (*dto.PostDetailDTO, error) {
	ds, err := s.datasetSvc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	detail, ok := analytics.PostDetailByID(ds, postID)
	if !ok {
		return nil, ErrPostNotFound
	}
	return toPostDetailDTO(detail), nil
}

func (s *dashboardServiceImpl) GetPostDetailByText(ctx context.Context, text string) (*dto.PostDetailDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrParamInvalid
	}
	ds, err := s.datasetSvc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	detail, ok := analytics.PostDetailByText(ds, text)
	if !ok {
		return nil, ErrPostNotFound
	}
	return toPostDetailDTO(detail), nil
}

func (s *dashboardServiceImpl) GetTopics(ctx context.Context, negative bool, keywords []string) (*dto.TopicsDTO, error) {
	keywords = analytics.NormalizeKeywords(keywords)
	if len(keywords) == 0 {
		keywords = s.opts.Keywords
	}
	ds, err := s.datasetSvc.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	var counts []analytics.TopicCount
	if negative {
		counts = analytics.NegativeTopicCounts(ds.Comments, keywords)
	} else {
		counts = analytics.TopicCounts(ds.Comments, keywords)
	}

	res := &dto.TopicsDTO{Negative: negative, Topics: make([]*dto.TopicCountDTO, 0, len(counts))}
	for _, c := range counts {
		res.Topics = append(res.Topics, &dto.TopicCountDTO{Keyword: c.Keyword, Count: c.Count})
	}
	return res, nil
}

func (s *dashboardServiceImpl) GetCriticalFeed(ctx context.Context, q *dto.CriticalQueryDTO) ([]*dto.CommentDTO, error) {
	if q == nil {
		q = &dto.CriticalQueryDTO{}
	}
	if q.Limit < 0 {
		return nil, ErrParamInvalid
	}
	ds, err := s.datasetSvc.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	query := analytics.CriticalQuery{PostID: q.PostID, Limit: q.Limit}
	if q.Urgent {
		query.UrgentKeywords = s.opts.UrgentKeywords
	}
	return toCommentDTOs(analytics.CriticalFeed(ds.Comments, query)), nil
}

// cachedView 先查 dashboard:view:<fingerprint>:<view>，未命中时计算并回写。
// 缓存读写失败只记录日志。
func cachedView[T any](ctx context.Context, s *dashboardServiceImpl, view string, compute func(ds *model.Dataset) T) (T, error) {
	var zero T
	ds, err := s.datasetSvc.Dataset(ctx)
	if err != nil {
		return zero, err
	}
	if s.cache == nil {
		return compute(ds), nil
	}

	key := consts.DashboardViewCacheKey(ds.Fingerprint, view)
	var cached T
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.WarnContext(ctx, "read dashboard view cache error", "key", key, "err", err)
	}
	if hit {
		return cached, nil
	}

	res := compute(ds)
	if err = s.cache.Set(ctx, key, res, s.opts.CacheTTL); err != nil {
		log.WarnContext(ctx, "write dashboard view cache error", "key", key, "err", err)
	}
	return res, nil
}
