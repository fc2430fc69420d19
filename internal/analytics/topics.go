package analytics

import (
	"sort"
	"strings"

	"Sentiscope/internal/model"
)

// TopicCount 包含某关键词的评论数
type TopicCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// CriticalQuery 负面评论流的过滤条件
type CriticalQuery struct {
	PostID         *int64
	UrgentKeywords []string
	Limit          int
}

// NormalizeKeywords 去掉空白项，忽略大小写去重，保留首次出现的写法与顺序
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		lower := strings.ToLower(k)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, k)
	}
	return out
}

// TopicCounts 忽略大小写的子串匹配（非整词），每个关键词独立计数，一条评论对同一关键词最多计一次
func TopicCounts(comments []model.Comment, keywords []string) []TopicCount {
	keywords = NormalizeKeywords(keywords)
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	counts := make([]int, len(keywords))
	for _, c := range comments {
		text := strings.ToLower(c.CommentText)
		for i, k := range lowered {
			if strings.Contains(text, k) {
				counts[i]++
			}
		}
	}

	out := make([]TopicCount, len(keywords))
	for i, k := range keywords {
		out[i] = TopicCount{Keyword: k, Count: counts[i]}
	}
	return out
}

// NegativeTopicCounts 只统计负面评论
func NegativeTopicCounts(comments []model.Comment, keywords []string) []TopicCount {
	return TopicCounts(FilterByLabel(comments, model.SentimentNegative), keywords)
}

// ContainsAny 文本是否包含任一关键词（忽略大小写）
func ContainsAny(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k != "" && strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// CriticalFeed 负面评论按点赞数降序，点赞相同保持输入顺序。
// UrgentKeywords 非空时只保留包含任一关键词的评论，Limit > 0 时截取前 N 条。
func CriticalFeed(comments []model.Comment, q CriticalQuery) []model.Comment {
	urgent := NormalizeKeywords(q.UrgentKeywords)
	out := make([]model.Comment, 0)
	for _, c := range comments {
		if c.SentimentLabel != model.SentimentNegative {
			continue
		}
		if q.PostID != nil && c.PostID != *q.PostID {
			continue
		}
		if len(urgent) > 0 && !ContainsAny(c.CommentText, urgent) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes > out[j].Likes
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
