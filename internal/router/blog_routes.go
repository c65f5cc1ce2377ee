package router

import (
	bloghandler "blog-platform-server/internal/modules/blog/handler"
	mediahandler "blog-platform-server/internal/modules/media/handler"

	"github.com/gin-gonic/gin"
)

func registerBlogRoutes(api *gin.RouterGroup, chains routeChains, h *bloghandler.Handler, media *mediahandler.Handler) {
	blogs := api.Group("/blogs")

	blogs.GET("", chains.optionalAuth, h.ListBlogs)
	blogs.GET("/search", chains.optionalAuth, h.SearchBlogs)
	blogs.GET("/categories", h.ListCategories)
	blogs.GET("/user/:userId", h.ListUserBlogs)

	authed := blogs.Group("")
	authed.Use(chains.requireAuth...)
	authed.GET("/my/blogs", h.ListMyBlogs)
	authed.POST("", chains.uploadLimit, chains.upload, h.CreateBlog)
	authed.POST("/upload", chains.uploadLimit, chains.upload, media.UploadImage)
	authed.PUT("/:id", chains.upload, h.UpdateBlog)
	authed.DELETE("/:id", h.DeleteBlog)
	authed.POST("/:id/like", chains.writeLimiter, h.ToggleLike)
	authed.POST("/:id/comment", chains.writeLimiter, h.AddComment)
	// gin 不允许同一层级出现不同名的参数，评论所属博客沿用 :id
	authed.DELETE("/:id/comment/:commentId", h.DeleteComment)

	// 详情页放在最后，保证静态路径优先匹配
	blogs.GET("/:id", chains.optionalAuth, h.GetBlog)
}
