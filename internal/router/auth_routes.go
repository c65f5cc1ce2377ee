package router

import (
	authhandler "blog-platform-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, chains routeChains, h *authhandler.Handler) {
	authGroup := api.Group("/auth")

	authGroup.POST("/register", chains.authLimiter, h.Register)
	authGroup.POST("/login", chains.authLimiter, h.Login)
	authGroup.POST("/admin-login", chains.authLimiter, h.AdminLogin)

	// 注销只需要令牌本身合法，已停用的账号也允许退出
	authGroup.POST("/logout", chains.requireAuth[0], h.Logout)

	userGroup := authGroup.Group("")
	userGroup.Use(chains.requireAuth...)
	userGroup.GET("/me", h.Me)
	userGroup.PUT("/profile", h.UpdateProfile)
	userGroup.PUT("/password", h.ChangePassword)
	userGroup.POST("/avatar", chains.uploadLimit, chains.upload, h.UploadAvatar)
}
