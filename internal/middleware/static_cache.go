package middleware

import (
	"net/http"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为本地图床目录下的封面与头像附加 Cache-Control。
// 上传文件名由 uuid 生成且不会被覆盖，因此可以放心长缓存；只作用于读取请求。
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}
		if cacheControl := appService.GetString(consts.ConfigStaticCacheControl); cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}
		c.Next()
	}
}
