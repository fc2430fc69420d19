package sentiment

import (
	"context"
	"math"
)

// Scorer 将一段文本映射为 [-1, 1] 内的极性分数，同一文本必须得到同一分数
type Scorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// ScorerFunc 把纯函数适配为 Scorer
type ScorerFunc func(text string) float64

func (f ScorerFunc) Polarity(_ context.Context, text string) (float64, error) {
	return f(text), nil
}

// Clamp 把分数截断到 [-1, 1]，NaN 视为 0
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
