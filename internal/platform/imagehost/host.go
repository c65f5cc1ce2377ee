// Package imagehost 提供图片托管能力：本地磁盘、MinIO 或未启用。
package imagehost

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"time"

	"blog-platform-server/internal/config"

	"github.com/google/uuid"
)

// Host 图片托管服务。Upload 返回可公开访问的 URL。
type Host interface {
	Upload(ctx context.Context, folder string, img Image) (string, error)
	Enabled() bool
}

const (
	ProviderDisabled = "disabled"
	ProviderLocal    = "local"
	ProviderMinIO    = "minio"
)

var folderPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// New 根据 image_host.provider 构造托管实现。
func New(cfg config.ImageHostConfig) (Host, error) {
	switch cfg.Provider {
	case "", ProviderDisabled:
		return Disabled{}, nil
	case ProviderLocal:
		return NewLocal(cfg.Local), nil
	case ProviderMinIO:
		return NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("不支持的图片托管类型: %s", cfg.Provider)
	}
}

// objectName 生成 folder/yyyy/mm/uuid.ext 形式的对象名。
func objectName(folder string, img Image, now time.Time) (string, error) {
	if !folderPattern.MatchString(folder) {
		return "", fmt.Errorf("非法的图片目录: %q", folder)
	}
	return path.Join(
		folder,
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
		uuid.NewString()+img.Ext,
	), nil
}

// Disabled 未配置图片托管时使用，所有上传均失败。
type Disabled struct{}

func (Disabled) Upload(context.Context, string, Image) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Enabled() bool {
	return false
}
