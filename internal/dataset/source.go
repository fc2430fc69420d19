package dataset

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/go-resty/resty/v2"
)

const (
	SourceKindFile  = "file"
	SourceKindHTTP  = "http"
	SourceKindMinIO = "minio"
)

// Payload 一次读取到的原始表格内容，Version 由内容哈希得出
type Payload struct {
	Name    string
	Data    []byte
	Version string
}

func NewPayload(name string, data []byte) *Payload {
	return &Payload{Name: name, Data: data, Version: ContentVersion(data)}
}

// ContentVersion 内容的 sha1，作为缓存失效键的一部分
func ContentVersion(data []byte) string {
	h := sha1.Sum(data)
	return hex.EncodeToString(h[:])
}

// Source 原始表格数据来源
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*Payload, error)
}

// FileSource 本地文件
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string {
	return filepath.Base(s.Path)
}

func (s *FileSource) Fetch(ctx context.Context) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return NewPayload(s.Name(), data), nil
}

// HTTPSource 通过 HTTP GET 拉取的远程文件
type HTTPSource struct {
	URL    string
	client *resty.Client
}

func NewHTTPSource(url string, client *resty.Client) *HTTPSource {
	if client == nil {
		client = resty.New()
	}
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) Name() string {
	u, err := url.Parse(s.URL)
	if err != nil || u.Path == "" {
		return s.URL
	}
	return path.Base(u.Path)
}

func (s *HTTPSource) Fetch(ctx context.Context) (*Payload, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.URL, resp.StatusCode())
	}
	return NewPayload(s.Name(), resp.Body()), nil
}
