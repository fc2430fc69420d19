package llm

import (
	log "log/slog"

	"Sentiscope/internal/api/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewClient 按配置创建 OpenAI 兼容的模型客户端
func NewClient(cfg config.LLMConfig) (llms.Model, error) {
	client, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}
	return client, nil
}
