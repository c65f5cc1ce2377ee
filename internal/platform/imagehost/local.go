package imagehost

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/utils"
)

// Local 将图片写入本地目录，由 gin 静态路由对外提供访问。
type Local struct {
	root      string
	urlPrefix string
}

func NewLocal(cfg config.LocalImageConfig) *Local {
	prefix := cfg.URLPrefix
	if prefix == "" {
		prefix = "/images/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Local{root: cfg.Path, urlPrefix: prefix}
}

func (l *Local) Enabled() bool {
	return true
}

func (l *Local) Upload(ctx context.Context, folder string, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := objectName(folder, img, time.Now())
	if err != nil {
		return "", err
	}

	dst, err := utils.ObjectFilePath(l.root, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("创建图片目录失败: %w", err)
	}
	if err := os.WriteFile(dst, img.Data, 0644); err != nil {
		return "", fmt.Errorf("写入图片失败: %w", err)
	}

	return l.urlPrefix + name, nil
}

// Root 返回图片存储根目录，供静态路由挂载。
func (l *Local) Root() string {
	return l.root
}

// URLPrefix 返回静态访问前缀（以 / 结尾）。
func (l *Local) URLPrefix() string {
	return l.urlPrefix
}
