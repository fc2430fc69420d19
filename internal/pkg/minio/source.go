package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"Sentiscope/internal/dataset"

	"github.com/minio/minio-go/v7"
)

// ObjectSource 以 MinIO 对象作为数据集输入，版本取对象 ETag
type ObjectSource struct {
	client *minio.Client
	bucket string
	object string
}

func NewObjectSource(client *minio.Client, bucket, object string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object}
}

func (s *ObjectSource) Name() string {
	return path.Base(s.object)
}

func (s *ObjectSource) Fetch(ctx context.Context) (*dataset.Payload, error) {
	if s.client == nil {
		return nil, fmt.Errorf("minio client is not initialized")
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat object %s/%s: %w", s.bucket, s.object, err)
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", s.bucket, s.object, err)
	}

	payload := dataset.NewPayload(s.Name(), data)
	if info.ETag != "" {
		payload.Version = "etag:" + info.ETag
	}
	return payload, nil
}
