package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// 测试内容：验证安全响应头被设置，且默认 CSP 只放行同源与内联图片。
func TestSecurityHeaders_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "img-src 'self' data: blob:;")
}

// 测试内容：验证对象存储等外部图片来源会加入 img-src，空白来源被忽略。
func TestSecurityHeaders_ImageOrigins(t *testing.T) {
	csp := buildContentSecurityPolicy([]string{" https://cdn.example.com/ ", ""})
	assert.Contains(t, csp, "img-src 'self' data: blob: https://cdn.example.com;")
	assert.Contains(t, csp, "frame-ancestors 'none'")
}
