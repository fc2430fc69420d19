package redis

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

// JSONCache 以 JSON 形式缓存视图结果
type JSONCache struct{}

func NewJSONCache() *JSONCache {
	return &JSONCache{}
}

// Get 命中时把值解码到 dst 并返回 true；未启用 Redis 时总是未命中
func (c *JSONCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	val, err := GetValue(ctx, key)
	if err != nil || val == "" {
		return false, err
	}
	if err = json.Unmarshal([]byte(val), dst); err != nil {
		_ = DeleteKey(ctx, key)
		return false, err
	}
	return true, nil
}

func (c *JSONCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !Enabled() || ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return SetWithExpiration(ctx, key, data, ttl)
}

func (c *JSONCache) DeletePrefix(ctx context.Context, prefix string) error {
	if !Enabled() {
		return nil
	}
	_, err := DeleteByPrefix(ctx, prefix)
	return err
}
