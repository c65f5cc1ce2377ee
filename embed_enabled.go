//go:build embed

package main

import (
	"embed"
	"io/fs"
)

// 构建前需要把前端产物复制到 frontend/ 目录，再使用 -tags embed 编译。
//
//go:embed all:frontend
var embeddedFrontend embed.FS

func frontendFS() fs.FS {
	distFS, err := fs.Sub(embeddedFrontend, "frontend")
	if err != nil {
		panic(err)
	}
	return distFS
}
