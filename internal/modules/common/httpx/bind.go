package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"blog-platform-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// BindJSON 绑定 JSON 请求体，失败时写出错误响应并返回 false。
// 请求体超出 MaxBytesReader 上限返回 413，其余绑定错误以 message 返回 400。
func BindJSON(c *gin.Context, obj interface{}, message string) bool {
	return BindJSONDescribed(c, obj, func(error) string { return message })
}

// BindJSONDescribed 同 BindJSON，400 的提示由 describe 根据绑定错误生成。
func BindJSONDescribed(c *gin.Context, obj interface{}, describe func(error) string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(c, http.StatusRequestEntityTooLarge, service.ErrorCodePayloadTooLarge,
			fmt.Sprintf("请求体不能超过 %dMB", tooLarge.Limit/(1024*1024)))
		return false
	}
	BadRequest(c, describe(err))
	return false
}
