package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"Sentiscope/internal/dataset"
	"Sentiscope/internal/model"
	"Sentiscope/internal/sentiment"

	"github.com/goccy/go-json"
)

const testPosts = `post_id,platform,post_text,post_type,likes,shares,comments,date
1,LinkedIn,Cloud-Native Compliance Framework Whitepaper,whitepaper,100,10,4,2024-03-05
2,Twitter,Urgent: Zero-Day mitigation strategy for Azure,alert,50,20,2,2024-03-01
3,Facebook,Live Session: SOC2 Compliance Best Practices,webinar,30,3,0,2024-03-05
`

const testComments = `comment_id,post_id,platform,comment_text,user,likes,date
1,1,LinkedIn,API compatibility issues are terrible,@a_CTO,50,2024-03-05
2,1,LinkedIn,SLA breach during migration,@b_CIO,90,2024-03-06
3,1,LinkedIn,AI integration works flawlessly,@c_CTO,12,2024-03-06
4,2,Twitter,Pricing for enterprises?,@d_CIO,7,2024-03-01
5,2,Twitter,Support ticket #1234 still unresolved,@e_CTO,90,2024-03-02
6,999,Facebook,Cloud outage is bad,@f_CIO,40,2024-03-06
`

// stringSource 内存数据源
type stringSource struct {
	mu   sync.Mutex
	name string
	data string
}

func (s *stringSource) Name() string {
	return s.name
}

func (s *stringSource) Fetch(_ context.Context) (*dataset.Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dataset.NewPayload(s.name, []byte(s.data)), nil
}

func (s *stringSource) set(data string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

func newTestLoader() (*dataset.Loader, *stringSource, *stringSource) {
	posts := &stringSource{name: "posts.csv", data: testPosts}
	comments := &stringSource{name: "comments.csv", data: testComments}
	fixed := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	l := dataset.NewLoader(posts, comments, sentiment.NewLexicon(), sentiment.DefaultThresholds(),
		dataset.WithWorkers(2),
		dataset.WithClock(func() time.Time { return fixed }))
	return l, posts, comments
}

// memCache 以 JSON 存储的内存视图缓存
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	hits    int
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(v, dst)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, prefix)
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}
	return out
}

// memSnapshotRepo 记录写入的快照
type memSnapshotRepo struct {
	mu    sync.Mutex
	saved []*model.SentimentSnapshot
	err   error
}

func (r *memSnapshotRepo) SaveSnapshot(_ context.Context, snapshot *model.SentimentSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, snapshot)
	return nil
}

func (r *memSnapshotRepo) ExistsFingerprint(_ context.Context, fingerprint string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, s := range r.saved {
		if s.Fingerprint == fingerprint {
			return true, nil
		}
	}
	return false, nil
}

func (r *memSnapshotRepo) ListLatest(_ context.Context, limit int) ([]*model.SentimentSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*model.SentimentSnapshot, 0, limit)
	for i := len(r.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.saved[i])
	}
	return out, nil
}

// memPublisher 记录发送的告警
type memPublisher struct {
	mu      sync.Mutex
	batches [][]model.CriticalAlert
}

func (p *memPublisher) PublishCritical(_ context.Context, alerts []model.CriticalAlert) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, alerts)
	return nil
}

// memAlertGuard 多个服务实例共享，模拟 Redis 中的去重记录
type memAlertGuard struct {
	mu   sync.Mutex
	seen map[int64]struct{}
}

func newMemAlertGuard() *memAlertGuard {
	return &memAlertGuard{seen: map[int64]struct{}{}}
}

func (g *memAlertGuard) MarkAlerted(_ context.Context, commentID int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.seen[commentID]; ok {
		return false, nil
	}
	g.seen[commentID] = struct{}{}
	return true, nil
}
