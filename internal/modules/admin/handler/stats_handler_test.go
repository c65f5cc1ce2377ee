package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证仪表盘接口返回约定的数据结构。
func TestGetStats_ResponseShape(t *testing.T) {
	gdb := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "Author", consts.RoleReader)
	testutils.CreateBlog(t, gdb, author.ID, "Post", "health")

	r := gin.New()
	r.Use(func(c *gin.Context) {
		httpx.SetActor(c, author.ID+100, consts.RoleAdmin)
		c.Next()
	})
	r.GET("/stats", testHandler.GetStats)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Stats struct {
				TotalUsers int64 `json:"totalUsers"`
				TotalBlogs int64 `json:"totalBlogs"`
			} `json:"stats"`
			RecentBlogs     []map[string]interface{} `json:"recentBlogs"`
			RecentUsers     []map[string]interface{} `json:"recentUsers"`
			BlogsByCategory []map[string]interface{} `json:"blogsByCategory"`
			MonthlyStats    []map[string]interface{} `json:"monthlyStats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Data.Stats.TotalUsers)
	assert.Equal(t, int64(1), body.Data.Stats.TotalBlogs)
	assert.Len(t, body.Data.RecentBlogs, 1)
	assert.Len(t, body.Data.RecentUsers, 1)
	assert.Equal(t, "health", body.Data.BlogsByCategory[0]["category"])
	assert.Len(t, body.Data.MonthlyStats, 1)
}
