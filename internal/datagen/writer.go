package datagen

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"Sentiscope/internal/dataset"
	"Sentiscope/internal/model"
)

const (
	PostsFile    = "mock_posts_biz.csv"
	CommentsFile = "mock_comments_biz.csv"
)

// WritePosts 以加载器可读的表头写出帖子
func WritePosts(w io.Writer, posts []model.Post) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.PostColumns); err != nil {
		return err
	}
	for _, p := range posts {
		record := []string{
			strconv.FormatInt(p.PostID, 10),
			string(p.Platform),
			p.PostText,
			p.PostType,
			strconv.Itoa(p.Likes),
			strconv.Itoa(p.Shares),
			strconv.Itoa(p.Comments),
			p.Date.Format(time.DateOnly),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComments 写出原始评论，不包含情感列
func WriteComments(w io.Writer, comments []model.Comment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.CommentColumns); err != nil {
		return err
	}
	for _, c := range comments {
		record := []string{
			strconv.FormatInt(c.CommentID, 10),
			strconv.FormatInt(c.PostID, 10),
			string(c.Platform),
			c.CommentText,
			c.User,
			strconv.Itoa(c.Likes),
			c.Date.Format(time.DateOnly),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
