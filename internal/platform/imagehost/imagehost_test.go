package imagehost

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证合法的 PNG data URI 可以被解析并识别类型。
func TestParseDataURI_PNG(t *testing.T) {
	img, err := ParseDataURI(testutils.PNGDataURI())
	require.NoError(t, err)

	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Ext)
	assert.Equal(t, testutils.MinimalPNG, img.Data)
}

// 测试内容：验证声明类型与真实内容不符、非 base64 或非图片的 data URI 会被拒绝。
func TestParseDataURI_Rejects(t *testing.T) {
	text := base64.StdEncoding.EncodeToString([]byte("plain text payload"))
	cases := []string{
		"https://example.com/a.png",
		"data:image/png,rawdata",
		"data:image/png;base64,!!!",
		"data:image/png;base64," + text,
		"data:image/png;base64,",
	}
	for _, ref := range cases {
		_, err := ParseDataURI(ref)
		assert.ErrorIs(t, err, ErrInvalidImage, "ref %q", ref)
	}
}

// 测试内容：验证未启用的托管服务总是返回未配置错误。
func TestDisabled_Upload(t *testing.T) {
	host, err := New(config.ImageHostConfig{Provider: "disabled"})
	require.NoError(t, err)

	assert.False(t, host.Enabled())
	_, err = host.Upload(context.Background(), "covers", Image{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// 测试内容：验证本地托管按 folder/yyyy/mm/uuid.ext 写入文件并返回访问 URL。
func TestLocal_UploadWritesFile(t *testing.T) {
	root := t.TempDir()
	host, err := New(config.ImageHostConfig{
		Provider: "local",
		Local:    config.LocalImageConfig{Path: root, URLPrefix: "/images"},
	})
	require.NoError(t, err)
	require.True(t, host.Enabled())

	img, err := ParseDataURI(testutils.PNGDataURI())
	require.NoError(t, err)

	url, err := host.Upload(context.Background(), "covers", img)
	require.NoError(t, err)

	now := time.Now()
	wantPrefix := "/images/covers/" + now.Format("2006") + "/" + now.Format("01") + "/"
	assert.True(t, strings.HasPrefix(url, wantPrefix), "url=%s", url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	rel := strings.TrimPrefix(url, "/images/")
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, testutils.MinimalPNG, data)
}

// 测试内容：验证非法的目录名会被拒绝，防止路径穿越。
func TestLocal_RejectsInvalidFolder(t *testing.T) {
	host := NewLocal(config.LocalImageConfig{Path: t.TempDir()})

	_, err := host.Upload(context.Background(), "../etc", Image{Data: testutils.MinimalPNG, Ext: ".png"})
	assert.Error(t, err)
}

// 测试内容：验证 MinIO 对象 URL 由公开地址、存储桶与对象名组成。
func TestMinIO_ObjectURL(t *testing.T) {
	host, err := NewMinIO(config.MinIOConfig{
		Endpoint:  "127.0.0.1:9000",
		AccessKey: "ak",
		SecretKey: "sk",
		Bucket:    "blog",
		PublicURL: "https://cdn.example.com/",
	})
	require.NoError(t, err)

	assert.True(t, host.Enabled())
	assert.Equal(t, "https://cdn.example.com/blog/covers/2026/01/x.png", host.objectURL("covers/2026/01/x.png"))
}

// 测试内容：验证未知托管类型返回错误。
func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(config.ImageHostConfig{Provider: "ftp"})
	assert.Error(t, err)
}
