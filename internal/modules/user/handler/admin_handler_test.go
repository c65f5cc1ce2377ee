package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(adminID uint) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		httpx.SetActor(c, adminID, consts.RoleAdmin)
		c.Next()
	})
	r.GET("/users", testHandler.ListUsers)
	r.GET("/users/:id", testHandler.GetUser)
	r.PUT("/users/:id", testHandler.UpdateUser)
	r.DELETE("/users/:id", testHandler.DeleteUser)
	return r
}

// 测试内容：验证用户列表返回分页信息与数据。
func TestListUsers_Pagination(t *testing.T) {
	gdb := setupTestDB(t)
	admin := testutils.CreateUser(t, gdb, "Admin", consts.RoleAdmin)
	testutils.CreateUser(t, gdb, "Reader", consts.RoleReader)

	w := httptest.NewRecorder()
	newAdminRouter(admin.ID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?limit=1&page=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count      int              `json:"count"`
		Total      int64            `json:"total"`
		Pagination httpx.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, int64(2), body.Total)
	assert.Equal(t, httpx.Pagination{Page: 2, Limit: 1, TotalPages: 2, HasNext: false, HasPrev: true}, body.Pagination)
}

// 测试内容：验证删除自身返回 400，删除他人成功，重复获取不存在用户返回 404。
func TestDeleteUser_SelfAndOther(t *testing.T) {
	gdb := setupTestDB(t)
	admin := testutils.CreateUser(t, gdb, "Admin", consts.RoleAdmin)
	reader := testutils.CreateUser(t, gdb, "Reader", consts.RoleReader)
	r := newAdminRouter(admin.ID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+strconv.Itoa(int(admin.ID)), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"self_delete"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+strconv.Itoa(int(reader.ID)), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/424242", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// 测试内容：验证修改用户角色为非法值时返回 400。
func TestUpdateUser_InvalidRole(t *testing.T) {
	gdb := setupTestDB(t)
	admin := testutils.CreateUser(t, gdb, "Admin", consts.RoleAdmin)
	reader := testutils.CreateUser(t, gdb, "Reader", consts.RoleReader)

	req := httptest.NewRequest(http.MethodPut, "/users/"+strconv.Itoa(int(reader.ID)), strings.NewReader(`{"role":"root"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newAdminRouter(admin.ID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
