package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"Sentiscope/internal/model"
)

var (
	PostColumns    = []string{"post_id", "platform", "post_text", "post_type", "likes", "shares", "comments", "date"}
	CommentColumns = []string{"comment_id", "post_id", "platform", "comment_text", "user", "likes", "date"}
)

var dateLayouts = []string{time.DateOnly, time.DateTime, time.RFC3339, "2006/01/02"}

// table 带表头的已读取表格
type table struct {
	source string
	cols   map[string]int
	rows   [][]string
	lines  []int
}

func readTable(r io.Reader, source string, required []string) (*table, error) {
	reader := csv.NewReader(r)
	if strings.EqualFold(filepath.Ext(source), ".tsv") {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, malformed(source, 0, "", "missing header row")
	}
	if err != nil {
		return nil, malformed(source, 1, "", "unreadable header: %v", err)
	}

	t := &table{source: source, cols: make(map[string]int, len(header))}
	for i, h := range header {
		name := cleanHeader(h)
		if _, dup := t.cols[name]; !dup && name != "" {
			t.cols[name] = i
		}
	}
	for _, col := range required {
		if _, ok := t.cols[col]; !ok {
			return nil, malformed(source, 1, col, "required column is missing")
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, malformed(source, pe.Line, "", "%v", pe.Err)
			}
			return nil, malformed(source, 0, "", "%v", err)
		}
		line, _ := reader.FieldPos(0)
		t.rows = append(t.rows, row)
		t.lines = append(t.lines, line)
	}
	return t, nil
}

func (t *table) str(i int, col string) (string, error) {
	idx := t.cols[col]
	row := t.rows[i]
	if idx >= len(row) {
		return "", malformed(t.source, t.lines[i], col, "row has %d fields", len(row))
	}
	return row[idx], nil
}

func (t *table) id(i int, col string) (int64, error) {
	raw, err := t.str(i, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, malformed(t.source, t.lines[i], col, "invalid integer %q", raw)
	}
	return v, nil
}

func (t *table) count(i int, col string) (int, error) {
	raw, err := t.str(i, col)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	if err != nil {
		// pandas 在有缺失值的整型列上会写出 "12.0"
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, malformed(t.source, t.lines[i], col, "invalid count %q", raw)
		}
		v = int(f)
	}
	if v < 0 {
		return 0, malformed(t.source, t.lines[i], col, "count must be non-negative, got %d", v)
	}
	return v, nil
}

func (t *table) date(i int, col string) (time.Time, error) {
	raw, err := t.str(i, col)
	if err != nil {
		return time.Time{}, err
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, malformed(t.source, t.lines[i], col, "invalid date %q", raw)
}

func (t *table) platform(i int, col string) (model.Platform, error) {
	raw, err := t.str(i, col)
	if err != nil {
		return "", err
	}
	p := model.Platform(strings.TrimSpace(raw))
	if !p.IsKnown() {
		return "", malformed(t.source, t.lines[i], col, "unknown platform %q", raw)
	}
	return p, nil
}

// ParsePosts 解析帖子表，任何结构性问题返回 *MalformedInputError
func ParsePosts(r io.Reader, source string) ([]model.Post, error) {
	t, err := readTable(r, source, PostColumns)
	if err != nil {
		return nil, err
	}
	posts := make([]model.Post, 0, len(t.rows))
	seen := make(map[int64]struct{}, len(t.rows))
	for i := range t.rows {
		var p model.Post
		if p.PostID, err = t.id(i, "post_id"); err != nil {
			return nil, err
		}
		if _, dup := seen[p.PostID]; dup {
			return nil, malformed(source, t.lines[i], "post_id", "duplicate post_id %d", p.PostID)
		}
		seen[p.PostID] = struct{}{}
		if p.Platform, err = t.platform(i, "platform"); err != nil {
			return nil, err
		}
		if p.PostText, err = t.str(i, "post_text"); err != nil {
			return nil, err
		}
		if p.PostType, err = t.str(i, "post_type"); err != nil {
			return nil, err
		}
		if p.Likes, err = t.count(i, "likes"); err != nil {
			return nil, err
		}
		if p.Shares, err = t.count(i, "shares"); err != nil {
			return nil, err
		}
		if p.Comments, err = t.count(i, "comments"); err != nil {
			return nil, err
		}
		if p.Date, err = t.date(i, "date"); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// ParseComments 解析评论表，情感字段留空待 Enrich 填充
func ParseComments(r io.Reader, source string) ([]model.Comment, error) {
	t, err := readTable(r, source, CommentColumns)
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0, len(t.rows))
	seen := make(map[int64]struct{}, len(t.rows))
	for i := range t.rows {
		var c model.Comment
		if c.CommentID, err = t.id(i, "comment_id"); err != nil {
			return nil, err
		}
		if _, dup := seen[c.CommentID]; dup {
			return nil, malformed(source, t.lines[i], "comment_id", "duplicate comment_id %d", c.CommentID)
		}
		seen[c.CommentID] = struct{}{}
		if c.PostID, err = t.id(i, "post_id"); err != nil {
			return nil, err
		}
		if c.Platform, err = t.platform(i, "platform"); err != nil {
			return nil, err
		}
		if c.CommentText, err = t.str(i, "comment_text"); err != nil {
			return nil, err
		}
		if c.User, err = t.str(i, "user"); err != nil {
			return nil, err
		}
		if c.Likes, err = t.count(i, "likes"); err != nil {
			return nil, err
		}
		if c.Date, err = t.date(i, "date"); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// ParsePostsPayload / ParseCommentsPayload 直接解析 Source 读到的内容
func ParsePostsPayload(p *Payload) ([]model.Post, error) {
	return ParsePosts(bytes.NewReader(p.Data), p.Name)
}

func ParseCommentsPayload(p *Payload) ([]model.Comment, error) {
	return ParseComments(bytes.NewReader(p.Data), p.Name)
}

func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}
