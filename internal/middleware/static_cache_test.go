package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证静态资源响应带上配置的 Cache-Control。
func TestStaticCacheMiddleware_SetsCacheControl(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)

	require.NoError(t, gdb.Save(&model.Setting{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=60"}).Error)
	testService.ClearCache()

	r := gin.New()
	r.Use(StaticCacheMiddleware(testService))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))
}

// 测试内容：验证非读取请求不会被附加缓存头。
func TestStaticCacheMiddleware_SkipsNonReadMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)

	require.NoError(t, gdb.Save(&model.Setting{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=60"}).Error)
	testService.ClearCache()

	r := gin.New()
	r.Use(StaticCacheMiddleware(testService))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusMethodNotAllowed) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
