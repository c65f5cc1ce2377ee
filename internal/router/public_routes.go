package router

import (
	"net/http"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/db"
	settingshandler "blog-platform-server/internal/modules/settings/handler"
	"blog-platform-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerPublicRoutes(api *gin.RouterGroup, gormDB *gorm.DB, h *settingshandler.Handler) {
	api.GET("/health", healthHandler(gormDB))
	api.GET("/webinfo", h.GetWebInfo)
}

func healthHandler(gormDB *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context(), gormDB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"code":    service.ErrorCodeUpstreamUnavailable,
				"message": "数据库不可用",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Server is running",
			"data": gin.H{
				"status":  "ok",
				"version": consts.ApplicationVersion,
			},
		})
	}
}
