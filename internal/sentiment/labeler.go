package sentiment

import (
	"fmt"
	"math"
	"strconv"

	"Sentiscope/internal/model"
)

const (
	DefaultPositiveThreshold = 0.2
	DefaultNegativeThreshold = -0.2
)

// Thresholds 三分类阈值：score > Positive 为正面，score < Negative 为负面，其余为中性
type Thresholds struct {
	Positive float64 `mapstructure:"positive" json:"positive"`
	Negative float64 `mapstructure:"negative" json:"negative"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Positive: DefaultPositiveThreshold, Negative: DefaultNegativeThreshold}
}

// Validate 阈值必须落在 [-1, 1] 且 Negative <= Positive，否则区间会重叠
func (t Thresholds) Validate() error {
	if math.IsNaN(t.Positive) || math.IsNaN(t.Negative) {
		return fmt.Errorf("sentiment thresholds must be numbers")
	}
	if t.Positive < -1 || t.Positive > 1 || t.Negative < -1 || t.Negative > 1 {
		return fmt.Errorf("sentiment thresholds must be within [-1, 1], got positive=%v negative=%v", t.Positive, t.Negative)
	}
	if t.Negative > t.Positive {
		return fmt.Errorf("negative threshold %v is above positive threshold %v", t.Negative, t.Positive)
	}
	return nil
}

// Label 严格比较，恰好等于阈值的分数归为中性
func (t Thresholds) Label(score float64) model.SentimentLabel {
	switch {
	case score > t.Positive:
		return model.SentimentPositive
	case score < t.Negative:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// Key 阈值的稳定字符串表示，参与数据集缓存键
func (t Thresholds) Key() string {
	return strconv.FormatFloat(t.Positive, 'g', -1, 64) + "/" + strconv.FormatFloat(t.Negative, 'g', -1, 64)
}
