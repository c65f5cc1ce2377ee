package testutils

import (
	"os"
	"sort"
)

// IsolatedEnv 测试进程使用的最小配置：调试模式、固定密钥、关闭 redis 与图床。
var IsolatedEnv = map[string]string{
	"BLOG_SERVER_MODE":         "debug",
	"BLOG_JWT_SECRET":          "test_secret",
	"BLOG_REDIS_ENABLED":       "false",
	"BLOG_IMAGE_HOST_PROVIDER": "disabled",
}

// ApplyEnv 写入一组 BLOG_ 环境变量，返回的函数按写入前的状态还原。
// 用于 TestMain 等无法使用 t.Setenv 的场景。
func ApplyEnv(values map[string]string) (restore func()) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	previous := make(map[string]*string, len(keys))
	for _, key := range keys {
		if old, ok := os.LookupEnv(key); ok {
			previous[key] = &old
		} else {
			previous[key] = nil
		}
		_ = os.Setenv(key, values[key])
	}

	return func() {
		for _, key := range keys {
			if old := previous[key]; old != nil {
				_ = os.Setenv(key, *old)
				continue
			}
			_ = os.Unsetenv(key)
		}
	}
}
