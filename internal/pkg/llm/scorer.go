package llm

import (
	"context"
	"fmt"

	"Sentiscope/internal/api/config"
	"Sentiscope/internal/sentiment"

	"github.com/tmc/langchaingo/llms"
	"golang.org/x/sync/semaphore"
)

const polarityPrompt = `You rate the sentiment of a single social media comment about a B2B technology product.
Reply with one number between -1 and 1, where -1 is very negative, 0 is neutral and 1 is very positive.
Reply with the number only.`

// Scorer 通过大模型给出极性分数，实现 sentiment.Scorer
type Scorer struct {
	client      llms.Model
	model       string
	temperature float64
	sem         *semaphore.Weighted
}

var _ sentiment.Scorer = (*Scorer)(nil)

func NewScorer(client llms.Model, cfg config.LLMConfig) *Scorer {
	return &Scorer{
		client:      client,
		model:       cfg.TextModel,
		temperature: cfg.Temperature,
		sem:         newTextSem(cfg.Concurrency),
	}
}

func (s *Scorer) Polarity(ctx context.Context, text string) (float64, error) {
	content, err := fetchModel(ctx, s.client, s.sem, s.model, polarityPrompt, text, s.temperature)
	if err != nil {
		return 0, fmt.Errorf("llm polarity: %w", err)
	}
	score, err := parseScore(content)
	if err != nil {
		return 0, fmt.Errorf("llm polarity %q: %w", content, err)
	}
	return sentiment.Clamp(score), nil
}
