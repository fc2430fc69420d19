package model

import (
	"time"
)

const (
	WarningOrphanComment     = "orphan_comment"
	WarningCommentBeforePost = "comment_before_post"
)

// IntegrityWarning 数据质量问题，只上报不中断加载
type IntegrityWarning struct {
	Kind      string `json:"kind"`
	CommentID int64  `json:"comment_id"`
	PostID    int64  `json:"post_id"`
	Message   string `json:"message"`
}

// Dataset 一次加载得到的只读数据快照
type Dataset struct {
	Posts       []Post
	Comments    []Comment
	Warnings    []IntegrityWarning
	Fingerprint string
	LoadedAt    time.Time

	postIndex map[int64]int
}

// NewDataset 构建快照并建立 post_id 索引，调用方之后不得再修改传入的切片
func NewDataset(posts []Post, comments []Comment, warnings []IntegrityWarning, fingerprint string, loadedAt time.Time) *Dataset {
	idx := make(map[int64]int, len(posts))
	for i, p := range posts {
		idx[p.PostID] = i
	}
	if warnings == nil {
		warnings = []IntegrityWarning{}
	}
	return &Dataset{
		Posts:       posts,
		Comments:    comments,
		Warnings:    warnings,
		Fingerprint: fingerprint,
		LoadedAt:    loadedAt,
		postIndex:   idx,
	}
}

// PostByID 按 post_id 查找帖子
func (d *Dataset) PostByID(postID int64) (Post, bool) {
	if d == nil {
		return Post{}, false
	}
	i, ok := d.postIndex[postID]
	if !ok {
		return Post{}, false
	}
	return d.Posts[i], true
}

// HasPost 判断 post_id 是否存在
func (d *Dataset) HasPost(postID int64) bool {
	_, ok := d.PostByID(postID)
	return ok
}
