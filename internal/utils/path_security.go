package utils

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrUnsafeObjectPath = errors.New("非法的图片存储路径")

// ObjectFilePath 把图床对象键（形如 covers/2026/10/<uuid>.png）解析为 root 下的文件路径。
// 对象键必须是相对的正斜杠路径，且 root 到目标之间已存在的节点不能是符号链接。
func ObjectFilePath(root, objectKey string) (string, error) {
	if objectKey == "" || strings.Contains(objectKey, "\\") || path.IsAbs(objectKey) {
		return "", ErrUnsafeObjectPath
	}
	cleanKey := path.Clean(objectKey)
	if cleanKey != objectKey || cleanKey == ".." || strings.HasPrefix(cleanKey, "../") {
		return "", ErrUnsafeObjectPath
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("图片目录解析失败: %w", err)
	}
	target := filepath.Join(rootAbs, filepath.FromSlash(cleanKey))
	if err := rejectSymlinks(rootAbs, target); err != nil {
		return "", err
	}
	return target, nil
}

// rejectSymlinks 从 target 逐级回溯到 rootAbs（含），遇到符号链接即失败。
func rejectSymlinks(rootAbs, target string) error {
	for current := target; ; current = filepath.Dir(current) {
		info, err := os.Lstat(current)
		switch {
		case err == nil && info.Mode()&os.ModeSymlink != 0:
			return fmt.Errorf("%w: %s 是符号链接", ErrUnsafeObjectPath, current)
		case err != nil && !os.IsNotExist(err):
			return fmt.Errorf("检查图片路径失败: %w", err)
		}
		if current == rootAbs {
			return nil
		}
		if filepath.Dir(current) == current {
			return ErrUnsafeObjectPath
		}
	}
}
