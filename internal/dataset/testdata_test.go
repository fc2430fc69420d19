package dataset

import (
	"context"
	"sync/atomic"
)

const postsCSV = `post_id,platform,post_text,post_type,likes,shares,comments,date
1,LinkedIn,AI-Driven Compliance Framework Whitepaper,whitepaper,1200,300,45,2024-03-01
2,Twitter,Urgent: DDoS mitigation strategy for AWS,alert,800,120,30,2024-02-15
3,Facebook,New Release: v4.0 introduces real-time threat detection,product_update,90,12,22,2024-03-01
`

const commentsCSV = `comment_id,post_id,platform,comment_text,user,likes,date
1,1,LinkedIn,"I love this, it's flawless!",@ana_CTO,50,2024-03-01
2,1,LinkedIn,This is broken and terrible,@bo_CIO,90,2024-03-02
3,2,Twitter,Can you share pricing?,@cy_Cloud Architect,12,2024-02-16
4,999,Facebook,SLA breach during migration,@di_Security Engineer,70,2024-03-03
5,3,Facebook,Support ticket #4821 still unresolved,@ed_CTO,5,2024-02-28
`

// memSource 内存数据源
type memSource struct {
	name  string
	data  atomic.Value
	calls atomic.Int32
	err   error
}

func newMemSource(name, data string) *memSource {
	s := &memSource{name: name}
	s.data.Store(data)
	return s
}

func (s *memSource) set(data string) {
	s.data.Store(data)
}

func (s *memSource) Name() string {
	return s.name
}

func (s *memSource) Fetch(_ context.Context) (*Payload, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return NewPayload(s.name, []byte(s.data.Load().(string))), nil
}

// countingScorer 记录打分次数
type countingScorer struct {
	calls atomic.Int32
	fn    func(string) float64
}

func (s *countingScorer) Polarity(_ context.Context, text string) (float64, error) {
	s.calls.Add(1)
	return s.fn(text), nil
}
