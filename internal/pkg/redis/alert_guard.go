package redis

import (
	"context"
	"strconv"
	"time"

	"Sentiscope/internal/pkg/consts"
)

// AlertGuard 用 SETNX 记录已推送过的负面评论，进程重启后仍然有效
type AlertGuard struct {
	ttl time.Duration
}

func NewAlertGuard(ttl time.Duration) *AlertGuard {
	return &AlertGuard{ttl: ttl}
}

// MarkAlerted 首次标记时返回 true；未启用 Redis 时总是返回 true
func (g *AlertGuard) MarkAlerted(ctx context.Context, commentID int64) (bool, error) {
	if !Enabled() {
		return true, nil
	}
	return SetNX(ctx, consts.CriticalAlertKey+strconv.FormatInt(commentID, 10), 1, g.ttl)
}
