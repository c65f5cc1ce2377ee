package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/middleware"
	"blog-platform-server/internal/modules"
	adminrepo "blog-platform-server/internal/modules/admin/repo"
	blogrepo "blog-platform-server/internal/modules/blog/repo"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	userrepo "blog-platform-server/internal/modules/user/repo"
	"blog-platform-server/internal/platform/imagehost"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	cfg := &config.Config{
		Server:    config.ServerConfig{CORSOrigins: []string{"http://localhost:5173"}},
		JWT:       config.JWTConfig{Secret: "router_test_secret", ExpirationHours: 1, CookieName: "token"},
		ImageHost: config.ImageHostConfig{DefaultCover: "/static/default-cover.jpg"},
		Content:   config.ContentConfig{MaxRetries: 3},
	}

	settingStore := settingsrepo.NewSettingRepository(gdb)
	appService := service.NewAppService(settingStore)
	require.NoError(t, appService.InitializeSettings())

	sessions := session.NewManager(cfg.JWT, session.NewRevocationList(nil, cfg.Redis))
	statusCache := session.NewStatusCache(nil, cfg.Redis)
	appModules := modules.New(
		cfg,
		appService,
		userrepo.NewUserRepository(gdb),
		blogrepo.NewBlogRepository(gdb),
		blogrepo.NewCommentRepository(gdb),
		settingStore,
		adminrepo.NewStatsRepository(gdb),
		sessions,
		statusCache,
		imagehost.Disabled{},
	)

	rt := NewRouter(appModules, appService, sessions, statusCache, middleware.NewRateLimiter(appService, nil, cfg.Redis), gdb, cfg)
	r := gin.New()
	rt.Init(r)
	return r, gdb
}

type apiResponse struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Total   int64           `json:"total"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

// 测试内容：验证核心 API 路由被正确注册。
func TestInit_RegistersCoreRoutes(t *testing.T) {
	r, _ := newTestEngine(t)

	wants := []string{
		"GET /api/health",
		"GET /api/webinfo",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/admin-login",
		"POST /api/auth/logout",
		"GET /api/auth/me",
		"PUT /api/auth/profile",
		"PUT /api/auth/password",
		"POST /api/auth/avatar",
		"GET /api/blogs",
		"GET /api/blogs/search",
		"GET /api/blogs/categories",
		"GET /api/blogs/user/:userId",
		"GET /api/blogs/my/blogs",
		"GET /api/blogs/:id",
		"POST /api/blogs",
		"PUT /api/blogs/:id",
		"DELETE /api/blogs/:id",
		"POST /api/blogs/:id/like",
		"POST /api/blogs/:id/comment",
		"DELETE /api/blogs/:id/comment/:commentId",
		"POST /api/blogs/upload",
		"GET /api/admin/stats",
		"GET /api/admin/users",
		"GET /api/admin/users/:id",
		"PUT /api/admin/users/:id",
		"DELETE /api/admin/users/:id",
		"GET /api/admin/blogs",
		"PUT /api/admin/blogs/:id/status",
		"GET /api/admin/comments",
		"PUT /api/admin/comments/:id",
		"GET /api/admin/settings",
		"PATCH /api/admin/settings",
	}

	have := make(map[string]bool)
	for _, route := range r.Routes() {
		have[route.Method+" "+route.Path] = true
	}
	for _, want := range wants {
		assert.True(t, have[want], "缺少路由: %s", want)
	}
}

// 测试内容：验证注册、发布、点赞、评论、详情与退出登录的完整流程。
func TestBlogLifecycleThroughRouter(t *testing.T) {
	r, _ := newTestEngine(t)

	status, resp := call(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Alice", "email": "Alice@Example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status, resp.Message)
	token := resp.Token
	require.NotEmpty(t, token)

	status, resp = call(t, r, http.MethodPost, "/api/blogs", token, map[string]interface{}{
		"title":    "Hello Router",
		"content":  testutils.LongContent(80),
		"category": "technology",
		"tags":     []string{"go", "gin"},
	})
	require.Equal(t, http.StatusCreated, status, resp.Message)
	var created struct {
		Blog struct {
			ID uint `json:"id"`
		} `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	blogPath := fmt.Sprintf("/api/blogs/%d", created.Blog.ID)

	status, resp = call(t, r, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), resp.Total)

	status, resp = call(t, r, http.MethodPost, blogPath+"/like", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"likes":1,"isLiked":true}`, string(resp.Data))

	status, _ = call(t, r, http.MethodPost, blogPath+"/comment", token, map[string]string{"text": "Nice post"})
	require.Equal(t, http.StatusCreated, status)

	status, resp = call(t, r, http.MethodGet, blogPath, token, nil)
	require.Equal(t, http.StatusOK, status)
	var detail struct {
		Blog struct {
			Views         int64 `json:"views"`
			CommentsCount int   `json:"commentsCount"`
			IsLiked       *bool `json:"isLiked"`
		} `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, int64(1), detail.Blog.Views)
	assert.Equal(t, 1, detail.Blog.CommentsCount)
	require.NotNil(t, detail.Blog.IsLiked)
	assert.True(t, *detail.Blog.IsLiked)

	status, _ = call(t, r, http.MethodGet, "/api/admin/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, resp = call(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized", resp.Code)
}

// 测试内容：验证管理员登录后可以访问仪表盘，停用账号的令牌随即失效。
func TestAdminAccessThroughRouter(t *testing.T) {
	r, gdb := newTestEngine(t)
	admin := testutils.CreateUser(t, gdb, "Root", consts.RoleAdmin)
	reader := testutils.CreateUser(t, gdb, "Reader", consts.RoleReader)

	status, resp := call(t, r, http.MethodPost, "/api/auth/admin-login", "", map[string]string{
		"email": admin.Email, "password": testutils.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, status, resp.Message)
	adminToken := resp.Token

	status, resp = call(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": reader.Email, "password": testutils.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, status)
	readerToken := resp.Token

	status, resp = call(t, r, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)

	status, _ = call(t, r, http.MethodGet, "/api/auth/me", readerToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", reader.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = call(t, r, http.MethodGet, "/api/auth/me", readerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden", resp.Code)
}

// 测试内容：验证健康检查与站点信息接口无需认证。
func TestPublicEndpoints(t *testing.T) {
	r, _ := newTestEngine(t)

	status, resp := call(t, r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)

	status, resp = call(t, r, http.MethodGet, "/api/webinfo", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(resp.Data), `"siteName":"Blog Platform"`)

	status, resp = call(t, r, http.MethodGet, "/api/blogs/categories", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
}

// 测试内容：验证 CORS 预检请求对配置来源放行并允许携带凭证。
func TestCORSPreflight(t *testing.T) {
	r, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/blogs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
