package minio

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"Sentiscope/internal/api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例，未配置时为 nil
	Client *minio.Client
	// Bucket 数据集所在的存储桶
	Bucket string
)

// Init 初始化 MinIO 客户端，endpoint 为空时不启用
func Init(cfg config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		return fmt.Errorf("minio bucket %q does not exist", cfg.Bucket)
	}

	Client = client
	Bucket = cfg.Bucket
	log.Info("MinIO connection established successfully.", "bucket", cfg.Bucket)
	return nil
}
