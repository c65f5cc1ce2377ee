package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证合法对象键被解析到图片目录之下。
func TestObjectFilePath_WithinRoot(t *testing.T) {
	root := t.TempDir()

	got, err := ObjectFilePath(root, "covers/2026/10/a.png")
	require.NoError(t, err)

	rootAbs, _ := filepath.Abs(root)
	rel, err := filepath.Rel(rootAbs, got)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("covers", "2026", "10", "a.png"), rel)
}

// 测试内容：验证绝对路径、目录穿越、非规范路径与反斜杠都会被拒绝。
func TestObjectFilePath_RejectsUnsafeKeys(t *testing.T) {
	root := t.TempDir()
	for _, key := range []string{"", "/etc/passwd", "../escape.png", "covers/../../x.png", "covers//a.png", `covers\a.png`} {
		_, err := ObjectFilePath(root, key)
		assert.ErrorIs(t, err, ErrUnsafeObjectPath, "key %q", key)
	}
}

// 测试内容：验证图片目录内的符号链接会被拒绝。
func TestObjectFilePath_RejectsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	root := t.TempDir()
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(root, "avatars")))

	_, err := ObjectFilePath(root, "avatars/2026/10/a.png")
	assert.ErrorIs(t, err, ErrUnsafeObjectPath)
}
