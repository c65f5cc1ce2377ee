package handler

import (
	"testing"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/modules/blog/repo"
	blogservice "blog-platform-server/internal/modules/blog/service"
	"blog-platform-server/internal/modules/common/httpx"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/testutils"
	"blog-platform-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterCustomValidations(v); err != nil {
			t.Fatalf("register validations: %v", err)
		}
	}

	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	svc := blogservice.New(
		appService,
		repo.NewBlogRepository(gdb),
		repo.NewCommentRepository(gdb),
		nil,
		config.ImageHostConfig{DefaultCover: "/static/default-cover.jpg"},
		config.ContentConfig{MaxRetries: 3},
	)
	testHandler = New(svc)
	return gdb
}

// newRouter 注册全部博客路由；userID 为 0 时以匿名身份访问。
func newRouter(userID uint, role string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			httpx.SetActor(c, userID, role)
		}
		c.Next()
	})

	r.GET("/blogs", testHandler.ListBlogs)
	r.GET("/blogs/search", testHandler.SearchBlogs)
	r.GET("/blogs/categories", testHandler.ListCategories)
	r.GET("/blogs/user/:userId", testHandler.ListUserBlogs)
	r.GET("/blogs/my/blogs", testHandler.ListMyBlogs)
	r.GET("/blogs/:id", testHandler.GetBlog)
	r.POST("/blogs", testHandler.CreateBlog)
	r.PUT("/blogs/:id", testHandler.UpdateBlog)
	r.DELETE("/blogs/:id", testHandler.DeleteBlog)
	r.POST("/blogs/:id/like", testHandler.ToggleLike)
	r.POST("/blogs/:id/comment", testHandler.AddComment)
	r.DELETE("/blogs/:id/comment/:commentId", testHandler.DeleteComment)

	r.GET("/admin/blogs", testHandler.AdminListBlogs)
	r.PUT("/admin/blogs/:id/status", testHandler.AdminUpdateBlogStatus)
	r.GET("/admin/comments", testHandler.AdminListComments)
	r.PUT("/admin/comments/:id", testHandler.AdminUpdateCommentStatus)
	return r
}
