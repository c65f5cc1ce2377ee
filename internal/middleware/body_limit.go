package middleware

import (
	"fmt"
	"net/http"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultMaxRequestBodyMB = 2
	defaultMaxUploadBodyMB  = 10
)

// BodyLimitMiddleware 按 max_request_body_size 限制普通接口的请求体。
// skip 返回 true 的路由（含图片的接口）交给 UploadBodyLimitMiddleware 处理。
func BodyLimitMiddleware(appService *service.AppService, skip func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skip != nil && skip(c) {
			c.Next()
			return
		}
		limitBody(c, appService.GetInt(consts.ConfigMaxRequestBodySize), defaultMaxRequestBodyMB, "请求体")
	}
}

// UploadBodyLimitMiddleware 按 max_upload_size 限制含图片接口（上传、头像、博客封面）的请求体。
func UploadBodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limitBody(c, appService.GetInt(consts.ConfigMaxUploadSize), defaultMaxUploadBodyMB, "文件大小")
	}
}

// limitBody 声明长度超限直接返回 413；未声明长度（分块传输）的请求由 MaxBytesReader 在读取时截断。
func limitBody(c *gin.Context, maxSizeMB, fallbackMB int, subject string) {
	if maxSizeMB <= 0 {
		maxSizeMB = fallbackMB
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024

	if c.Request.ContentLength > maxBytes {
		httpx.AbortWithError(c, http.StatusRequestEntityTooLarge, service.ErrorCodePayloadTooLarge,
			fmt.Sprintf("%s不能超过 %dMB", subject, maxSizeMB))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	c.Next()
}
