package router

import (
	"blog-platform-server/internal/middleware"
	"blog-platform-server/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, chains routeChains, m *modules.AppModules) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(chains.requireAuth...)
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", m.Admin.Handler.GetStats)

	adminGroup.GET("/users", m.User.Handler.ListUsers)
	adminGroup.GET("/users/:id", m.User.Handler.GetUser)
	adminGroup.PUT("/users/:id", m.User.Handler.UpdateUser)
	adminGroup.DELETE("/users/:id", m.User.Handler.DeleteUser)

	adminGroup.GET("/blogs", m.Blog.Handler.AdminListBlogs)
	adminGroup.PUT("/blogs/:id/status", m.Blog.Handler.AdminUpdateBlogStatus)

	adminGroup.GET("/comments", m.Blog.Handler.AdminListComments)
	adminGroup.PUT("/comments/:id", m.Blog.Handler.AdminUpdateCommentStatus)

	adminGroup.GET("/settings", m.Settings.Handler.GetSettings)
	adminGroup.PATCH("/settings", m.Settings.Handler.UpdateSettings)
}
