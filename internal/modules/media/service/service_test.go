package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blog-platform-server/internal/config"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	"blog-platform-server/internal/platform/imagehost"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, host imagehost.Host) *Service {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	appService.ClearCache()
	return New(appService, host)
}

func assertServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	require.True(t, ok, "期望 ServiceError，实际为: %v", err)
	assert.Equal(t, code, serviceErr.Code)
}

// 测试内容：验证空引用与普通 URL 原样返回，不触发上传。
func TestResolve_PassThrough(t *testing.T) {
	svc := newTestService(t, imagehost.Disabled{})

	url, err := svc.Resolve(context.Background(), "covers", "")
	require.NoError(t, err)
	assert.Empty(t, url)

	url, err = svc.Resolve(context.Background(), "covers", " https://cdn.example.com/a.png ")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", url)
}

// 测试内容：验证未配置图床时上传 data URI 返回 UpstreamUnavailable。
func TestResolve_DisabledHost(t *testing.T) {
	svc := newTestService(t, imagehost.Disabled{})

	_, err := svc.Resolve(context.Background(), "covers", testutils.PNGDataURI())
	assertServiceErrorCode(t, err, platformservice.ErrorCodeUpstreamUnavailable)
}

// 测试内容：验证本地图床会把 data URI 写入磁盘并返回带前缀的地址。
func TestResolve_LocalHostWritesFile(t *testing.T) {
	root := t.TempDir()
	host := imagehost.NewLocal(config.LocalImageConfig{Path: root, URLPrefix: "/images"})
	svc := newTestService(t, host)

	url, err := svc.Resolve(context.Background(), "avatars", testutils.PNGDataURI())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/images/avatars/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(url, "/images/"))))
	require.NoError(t, err)
	assert.Equal(t, testutils.MinimalPNG, data)
}

// 测试内容：验证内联上传只接受 data URI，非图片内容返回校验错误。
func TestUploadInline_Validation(t *testing.T) {
	host := imagehost.NewLocal(config.LocalImageConfig{Path: t.TempDir()})
	svc := newTestService(t, host)

	_, err := svc.UploadInline(context.Background(), "https://cdn.example.com/a.png")
	assertServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	_, err = svc.UploadInline(context.Background(), "data:text/plain;base64,aGVsbG8gd29ybGQ=")
	assertServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	url, err := svc.UploadInline(context.Background(), testutils.PNGDataURI())
	require.NoError(t, err)
	assert.Contains(t, url, "/"+InlineFolder+"/")
}
