package dataset

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sync"

	"Sentiscope/internal/model"
	"Sentiscope/internal/sentiment"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

// ScoreCache 按文本内容缓存极性分数，跨多次加载复用
type ScoreCache struct {
	mu sync.RWMutex
	m  map[string]float64
}

func NewScoreCache() *ScoreCache {
	return &ScoreCache{m: make(map[string]float64)}
}

func (c *ScoreCache) get(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *ScoreCache) put(key string, v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = v
}

// Len 已缓存的文本数
func (c *ScoreCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func scoreKey(text string) string {
	h := sha1.Sum([]byte(text))
	return hex.EncodeToString(h[:])
}

// Enrich 为每条评论计算 sentiment 与 sentiment_label，返回新切片，不修改入参。
// 相同文本只打分一次，cache 为 nil 时只在本次调用内去重。
func Enrich(
	ctx context.Context,
	comments []model.Comment,
	scorer sentiment.Scorer,
	thresholds sentiment.Thresholds,
	cache *ScoreCache,
	workers int,
) ([]model.Comment, error) {
	if cache == nil {
		cache = NewScoreCache()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	pending := make(map[string]string)
	for _, c := range comments {
		key := scoreKey(c.CommentText)
		if _, ok := cache.get(key); ok {
			continue
		}
		pending[key] = c.CommentText
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for key, text := range pending {
		g.Go(func() error {
			score, err := scorer.Polarity(gCtx, text)
			if err != nil {
				return fmt.Errorf("score comment text %q: %w", truncate(text, 40), err)
			}
			cache.put(key, sentiment.Clamp(score))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.Comment, len(comments))
	for i, c := range comments {
		score, _ := cache.get(scoreKey(c.CommentText))
		c.Sentiment = score
		c.SentimentLabel = thresholds.Label(score)
		out[i] = c
	}
	return out, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
