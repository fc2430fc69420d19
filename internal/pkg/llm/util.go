package llm

import (
	"context"
	"errors"
	log "log/slog"
	"regexp"
	"strconv"

	"github.com/tmc/langchaingo/llms"
	"golang.org/x/sync/semaphore"
)

var numberPattern = regexp.MustCompile(`[-+]?\d*\.?\d+`)

func fetchModel(ctx context.Context, client llms.Model, sem *semaphore.Weighted, model string, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer sem.Release(1)

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
		},
	}
	log.DebugContext(ctx, "正在请求AI大模型", "model", model)
	resp, err := client.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errors.New("empty model response")
	}
	return resp.Choices[0].Content, nil
}

// parseScore 取回复中出现的第一个数字
func parseScore(content string) (float64, error) {
	m := numberPattern.FindString(content)
	if m == "" {
		return 0, errors.New("no number in model response")
	}
	return strconv.ParseFloat(m, 64)
}
