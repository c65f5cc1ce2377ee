package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证分页参数规范化：小于 1 取默认值，limit 上限 100。
func TestNormalizePage(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, NormalizePage(0, 0))
	assert.Equal(t, Page{Page: 1, Limit: 10}, NormalizePage(-3, -1))
	assert.Equal(t, Page{Page: 2, Limit: 100}, NormalizePage(2, 500))
	assert.Equal(t, 20, NormalizePage(3, 10).Offset())
}

// 测试内容：验证分页元信息的总页数与前后页标记。
func TestBuildPagination(t *testing.T) {
	p := BuildPagination(Page{Page: 2, Limit: 10}, 25)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, TotalPages: 3, HasNext: true, HasPrev: true}, p)

	p = BuildPagination(Page{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

// 测试内容：验证业务错误码映射为对应的 HTTP 状态码并输出统一结构。
func TestWriteServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[service.ErrorCode]int{
		service.ErrorCodeValidation:          http.StatusBadRequest,
		service.ErrorCodeUnauthorized:        http.StatusUnauthorized,
		service.ErrorCodeForbidden:           http.StatusForbidden,
		service.ErrorCodeNotFound:            http.StatusNotFound,
		service.ErrorCodeConflict:            http.StatusConflict,
		service.ErrorCodeAlreadyDeleted:      http.StatusConflict,
		service.ErrorCodeSelfDelete:          http.StatusBadRequest,
		service.ErrorCodeUpstreamUnavailable: http.StatusServiceUnavailable,
		service.ErrorCodeInternal:            http.StatusInternalServerError,
	}
	for code, status := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		WriteServiceError(c, service.NewServiceError(code, "msg"), "fallback")

		assert.Equal(t, status, w.Code, "code %s", code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, string(code), body["code"])
		assert.Equal(t, "msg", body["message"])
	}
}

// 测试内容：验证非业务错误返回 500 与兜底信息，非调试模式下不泄露错误详情。
func TestWriteServiceError_UnknownErrorHidesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteServiceError(c, errors.New("sql: connection refused"), "获取失败")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "获取失败", body["message"])
	assert.NotContains(t, body, "error")
}

// 测试内容：验证未设置上下文时为匿名主体，设置后读取到用户 ID 与角色。
func TestCurrentActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, CurrentActor(c).Authenticated)

	SetActor(c, 9, consts.RoleAdmin)
	actor := CurrentActor(c)
	assert.True(t, actor.Authenticated)
	assert.Equal(t, uint(9), actor.ID)
	assert.True(t, actor.IsAdmin())
}

// 测试内容：验证列表响应包含 count、total 与分页信息。
func TestList_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	List(c, "items", []string{"a", "b"}, 2, 12, Page{Page: 1, Limit: 2})

	var body struct {
		Success    bool       `json:"success"`
		Count      int        `json:"count"`
		Total      int64      `json:"total"`
		Pagination Pagination `json:"pagination"`
		Data       struct {
			Items []string `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, int64(12), body.Total)
	assert.Equal(t, 6, body.Pagination.TotalPages)
	assert.Equal(t, []string{"a", "b"}, body.Data.Items)
}

// 测试内容：验证请求体超过 MaxBytesReader 上限时返回 413，格式错误返回 400。
func TestBindJSON_TooLargeAndMalformed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 1024*1024)
		var body map[string]string
		if !BindJSON(c, &body, "参数格式错误") {
			return
		}
		c.Status(http.StatusNoContent)
	})

	large := `{"text":"` + strings.Repeat("a", 2*1024*1024) + `"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(large)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"payload_too_large"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "参数格式错误")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"text":"ok"}`)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
