package dataset

import (
	"fmt"
	"time"

	"Sentiscope/internal/model"
)

// CheckIntegrity 找出引用不存在帖子的评论以及早于帖子发布日期的评论
func CheckIntegrity(posts []model.Post, comments []model.Comment) []model.IntegrityWarning {
	postDates := make(map[int64]time.Time, len(posts))
	for _, p := range posts {
		postDates[p.PostID] = p.Date
	}

	warnings := make([]model.IntegrityWarning, 0)
	for _, c := range comments {
		postDate, ok := postDates[c.PostID]
		if !ok {
			warnings = append(warnings, model.IntegrityWarning{
				Kind:      model.WarningOrphanComment,
				CommentID: c.CommentID,
				PostID:    c.PostID,
				Message:   fmt.Sprintf("comment %d references missing post %d", c.CommentID, c.PostID),
			})
			continue
		}
		if c.Date.Before(postDate) {
			warnings = append(warnings, model.IntegrityWarning{
				Kind:      model.WarningCommentBeforePost,
				CommentID: c.CommentID,
				PostID:    c.PostID,
				Message: fmt.Sprintf("comment %d dated %s precedes post %d dated %s",
					c.CommentID, c.Date.Format(time.DateOnly), c.PostID, postDate.Format(time.DateOnly)),
			})
		}
	}
	return warnings
}

// CountWarnings 按类型统计
func CountWarnings(warnings []model.IntegrityWarning, kind string) int {
	n := 0
	for _, w := range warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}
