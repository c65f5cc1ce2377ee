package httpx

import (
	"net/http"

	"blog-platform-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
// 非业务错误统一按内部错误处理，错误详情仅在调试模式下返回。
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		status := serviceErrorStatus(serviceErr.Code)
		if status >= http.StatusInternalServerError {
			log.Error().Err(serviceErr.Cause).Str("path", c.FullPath()).Msg(serviceErr.Message)
		}
		body := gin.H{
			"success": false,
			"code":    serviceErr.Code,
			"message": serviceErr.Message,
		}
		if serviceErr.Cause != nil && gin.Mode() == gin.DebugMode {
			body["error"] = serviceErr.Cause.Error()
		}
		c.JSON(status, body)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg(fallbackMessage)
	body := gin.H{
		"success": false,
		"code":    service.ErrorCodeInternal,
		"message": fallbackMessage,
	}
	if err != nil && gin.Mode() == gin.DebugMode {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// WriteError 直接写出指定状态码的错误响应，用于参数绑定等处理器层错误。
func WriteError(c *gin.Context, status int, code service.ErrorCode, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"code":    code,
		"message": message,
	})
}

// AbortWithError 写出错误响应并终止后续处理器，供中间件使用。
func AbortWithError(c *gin.Context, status int, code service.ErrorCode, message string) {
	WriteError(c, status, code, message)
	c.Abort()
}

// BadRequest 写出 400 参数错误。
func BadRequest(c *gin.Context, message string) {
	WriteError(c, http.StatusBadRequest, service.ErrorCodeValidation, message)
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation, service.ErrorCodeSelfDelete:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict, service.ErrorCodeAlreadyDeleted:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	case service.ErrorCodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case service.ErrorCodeRateLimited:
		return http.StatusTooManyRequests
	case service.ErrorCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
