package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"blog-platform-server/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// MinIO 将图片写入 S3 兼容的对象存储。
type MinIO struct {
	client    *minio.Client
	bucket    string
	publicURL string

	bucketOnce sync.Once
	bucketErr  error
}

func NewMinIO(cfg config.MinIOConfig) (*MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 MinIO 客户端失败: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + cfg.Endpoint
	}

	return &MinIO{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (m *MinIO) Enabled() bool {
	return true
}

func (m *MinIO) Upload(ctx context.Context, folder string, img Image) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return "", err
	}

	now := time.Now()
	name, err := objectName(folder, img, now)
	if err != nil {
		return "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(img.Data), int64(len(img.Data)),
		minio.PutObjectOptions{
			ContentType: img.ContentType,
			UserMetadata: map[string]string{
				"folder":      folder,
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("上传到 MinIO 失败: %w", err)
	}

	return m.objectURL(name), nil
}

func (m *MinIO) objectURL(name string) string {
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, name)
}

// ensureBucket 首次上传时检查存储桶，不存在则创建。
func (m *MinIO) ensureBucket(ctx context.Context) error {
	m.bucketOnce.Do(func() {
		exists, err := m.client.BucketExists(ctx, m.bucket)
		if err != nil {
			m.bucketErr = fmt.Errorf("检查 MinIO 存储桶失败: %w", err)
			return
		}
		if exists {
			return
		}
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			m.bucketErr = fmt.Errorf("创建 MinIO 存储桶失败: %w", err)
			return
		}
		log.Info().Str("bucket", m.bucket).Msg("✅ 已创建 MinIO 存储桶")
	})
	return m.bucketErr
}
