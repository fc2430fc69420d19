package analytics

import (
	"Sentiscope/internal/model"
)

// PostDetail 单个帖子及其全部评论
type PostDetail struct {
	Post      model.Post      `json:"post"`
	Comments  []model.Comment `json:"comments"`
	Sentiment LabelCounts     `json:"sentiment"`
}

// PostSentiment 单个帖子的评论标签分布
type PostSentiment struct {
	PostID   int64          `json:"post_id"`
	Platform model.Platform `json:"platform"`
	PostText string         `json:"post_text"`
	Counts   LabelCounts    `json:"counts"`
}

// PostDetailByID 帖子不存在时 ok 为 false；没有评论时返回空切片而不是错误
func PostDetailByID(ds *model.Dataset, postID int64) (PostDetail, bool) {
	post, ok := ds.PostByID(postID)
	if !ok {
		return PostDetail{}, false
	}
	return buildPostDetail(ds, post), true
}

// PostDetailByText 按帖子正文精确匹配第一个帖子
func PostDetailByText(ds *model.Dataset, text string) (PostDetail, bool) {
	if ds == nil {
		return PostDetail{}, false
	}
	for _, p := range ds.Posts {
		if p.PostText == text {
			return buildPostDetail(ds, p), true
		}
	}
	return PostDetail{}, false
}

func buildPostDetail(ds *model.Dataset, post model.Post) PostDetail {
	comments := make([]model.Comment, 0)
	for _, c := range ds.Comments {
		if c.PostID == post.PostID {
			comments = append(comments, c)
		}
	}
	return PostDetail{
		Post:      post,
		Comments:  comments,
		Sentiment: SentimentDistribution(comments),
	}
}

// PostSentimentBreakdown 每个至少有一条评论的帖子的标签分布，按帖子输入顺序
func PostSentimentBreakdown(ds *model.Dataset) []PostSentiment {
	byPost := make(map[int64]LabelCounts)
	for _, c := range ds.Comments {
		if !ds.HasPost(c.PostID) {
			continue
		}
		counts, ok := byPost[c.PostID]
		if !ok {
			counts = NewLabelCounts()
			byPost[c.PostID] = counts
		}
		counts[c.SentimentLabel]++
	}

	out := make([]PostSentiment, 0, len(byPost))
	for _, p := range ds.Posts {
		counts, ok := byPost[p.PostID]
		if !ok {
			continue
		}
		out = append(out, PostSentiment{
			PostID:   p.PostID,
			Platform: p.Platform,
			PostText: p.PostText,
			Counts:   counts,
		})
	}
	return out
}

// PostOption 帖子选择列表中的一项
type PostOption struct {
	PostID   int64          `json:"post_id"`
	Platform model.Platform `json:"platform"`
	PostType string         `json:"post_type"`
	PostText string         `json:"post_text"`
}

// ListPosts 按输入顺序列出全部帖子
func ListPosts(ds *model.Dataset) []PostOption {
	if ds == nil {
		return []PostOption{}
	}
	out := make([]PostOption, 0, len(ds.Posts))
	for _, p := range ds.Posts {
		out = append(out, PostOption{
			PostID:   p.PostID,
			Platform: p.Platform,
			PostType: p.PostType,
			PostText: p.PostText,
		})
	}
	return out
}
