package dataset

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	log "log/slog"
	"sync"
	"time"

	"Sentiscope/internal/model"
	"Sentiscope/internal/sentiment"

	"golang.org/x/sync/errgroup"
)

// Loader 读取帖子与评论、完成情感增强，并按显式失效键缓存最近一次的数据集
type Loader struct {
	posts      Source
	comments   Source
	scorer     sentiment.Scorer
	thresholds sentiment.Thresholds
	workers    int
	scores     *ScoreCache
	now        func() time.Time

	mu      sync.Mutex
	key     string
	current *model.Dataset
}

type LoaderOption func(*Loader)

// WithWorkers 打分并发数
func WithWorkers(n int) LoaderOption {
	return func(l *Loader) {
		l.workers = n
	}
}

// WithScoreCache 共享的文本分数缓存
func WithScoreCache(c *ScoreCache) LoaderOption {
	return func(l *Loader) {
		l.scores = c
	}
}

// WithClock 测试用
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) {
		l.now = now
	}
}

func NewLoader(posts, comments Source, scorer sentiment.Scorer, thresholds sentiment.Thresholds, opts ...LoaderOption) *Loader {
	l := &Loader{
		posts:      posts,
		comments:   comments,
		scorer:     scorer,
		thresholds: thresholds,
		workers:    DefaultWorkers,
		scores:     NewScoreCache(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load 返回当前数据集。源内容与阈值均未变化时直接返回缓存，fresh 为 false；
// 否则重新解析与打分。结构性错误不会替换已缓存的数据集。
func (l *Loader) Load(ctx context.Context) (ds *model.Dataset, fresh bool, err error) {
	return l.load(ctx, false)
}

// Reload 忽略失效键强制重建。失败时保留原数据集。
func (l *Loader) Reload(ctx context.Context) (*model.Dataset, error) {
	ds, _, err := l.load(ctx, true)
	return ds, err
}

func (l *Loader) load(ctx context.Context, force bool) (ds *model.Dataset, fresh bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var postsPayload, commentsPayload *Payload
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		postsPayload, err = l.posts.Fetch(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		commentsPayload, err = l.comments.Fetch(gCtx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, false, fmt.Errorf("fetch dataset sources: %w", err)
	}

	key := CacheKey(postsPayload.Version, commentsPayload.Version, l.thresholds)
	if !force && l.current != nil && key == l.key {
		return l.current, false, nil
	}

	start := time.Now()
	posts, err := ParsePostsPayload(postsPayload)
	if err != nil {
		return nil, false, err
	}
	comments, err := ParseCommentsPayload(commentsPayload)
	if err != nil {
		return nil, false, err
	}

	warnings := CheckIntegrity(posts, comments)
	if len(warnings) > 0 {
		log.WarnContext(ctx, "dataset integrity warnings",
			"orphan_comments", CountWarnings(warnings, model.WarningOrphanComment),
			"comments_before_post", CountWarnings(warnings, model.WarningCommentBeforePost),
			"first", warnings[0].Message)
	}

	enriched, err := Enrich(ctx, comments, l.scorer, l.thresholds, l.scores, l.workers)
	if err != nil {
		return nil, false, fmt.Errorf("enrich comments: %w", err)
	}

	ds = model.NewDataset(posts, enriched, warnings, key, l.now())
	l.key = key
	l.current = ds

	log.InfoContext(ctx, "dataset loaded",
		"fingerprint", key,
		"posts", len(posts),
		"comments", len(enriched),
		"warnings", len(warnings),
		"cached_scores", l.scores.Len(),
		"latency", time.Since(start))
	return ds, true, nil
}

// Current 最近一次成功加载的数据集，未加载时为 nil
func (l *Loader) Current() *model.Dataset {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Invalidate 丢弃缓存的数据集，下一次 Load 必定重建。文本分数缓存保留。
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.key = ""
	l.current = nil
}

// Thresholds 当前使用的分类阈值
func (l *Loader) Thresholds() sentiment.Thresholds {
	return l.thresholds
}

// CacheKey 数据集的失效键：两份源内容版本加上分类阈值
func CacheKey(postsVersion, commentsVersion string, t sentiment.Thresholds) string {
	h := sha1.Sum([]byte(postsVersion + "|" + commentsVersion + "|" + t.Key()))
	return hex.EncodeToString(h[:])
}
