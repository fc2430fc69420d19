package analytics

import (
	"Sentiscope/internal/model"
)

// LabelCounts 三种标签的计数，始终包含全部三个键
type LabelCounts map[model.SentimentLabel]int

func NewLabelCounts() LabelCounts {
	c := make(LabelCounts, len(model.SentimentLabels))
	for _, l := range model.SentimentLabels {
		c[l] = 0
	}
	return c
}

// Total 各标签计数之和
func (c LabelCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// PlatformSentiment 单个平台的标签分布
type PlatformSentiment struct {
	Platform model.Platform `json:"platform"`
	Counts   LabelCounts    `json:"counts"`
}

// SentimentDistribution 全部评论的标签分布，缺失的标签计 0
func SentimentDistribution(comments []model.Comment) LabelCounts {
	counts := NewLabelCounts()
	for _, c := range comments {
		if c.SentimentLabel.IsValid() {
			counts[c.SentimentLabel]++
		}
	}
	return counts
}

// SentimentByPlatform 按评论所在平台分组，平台按首次出现的顺序输出，每个平台都包含三个标签
func SentimentByPlatform(comments []model.Comment) []PlatformSentiment {
	out := make([]PlatformSentiment, 0)
	index := make(map[model.Platform]int)
	for _, c := range comments {
		i, ok := index[c.Platform]
		if !ok {
			i = len(out)
			index[c.Platform] = i
			out = append(out, PlatformSentiment{Platform: c.Platform, Counts: NewLabelCounts()})
		}
		if c.SentimentLabel.IsValid() {
			out[i].Counts[c.SentimentLabel]++
		}
	}
	return out
}

// FilterByLabel 保持原顺序返回指定标签的评论
func FilterByLabel(comments []model.Comment, label model.SentimentLabel) []model.Comment {
	out := make([]model.Comment, 0)
	for _, c := range comments {
		if c.SentimentLabel == label {
			out = append(out, c)
		}
	}
	return out
}

// Percent count/total*100 向零截断，total 为 0 时返回 0
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return count * 100 / total
}
