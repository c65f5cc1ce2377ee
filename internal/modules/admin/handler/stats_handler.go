package handler

import (
	"time"

	"blog-platform-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetStats 获取后台仪表盘统计
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.adminService.DashboardStats(httpx.CurrentActor(c), time.Now())
	if err != nil {
		httpx.WriteServiceError(c, err, "获取统计数据失败")
		return
	}

	httpx.OK(c, stats)
}
