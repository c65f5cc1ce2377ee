//go:build !embed

package main

import "io/fs"

// frontendFS 纯 API 构建不携带前端产物。
func frontendFS() fs.FS {
	return nil
}
