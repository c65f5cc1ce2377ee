package handler

import (
	"blog-platform-server/internal/modules/common/httpx"
	moduledto "blog-platform-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

// GetSettings 获取全部运行时设置
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings(httpx.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}

	httpx.OK(c, gin.H{"settings": settings})
}

// UpdateSettings 批量更新运行时设置
func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if !httpx.BindJSON(c, &reqs, "参数格式错误") {
		return
	}

	if err := h.settingsService.AdminUpdateSettings(httpx.CurrentActor(c), reqs); err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}

	httpx.OKMessage(c, "配置更新成功", gin.H{"count": len(reqs)})
}

// GetWebInfo 获取前台展示用的站点信息
func (h *Handler) GetWebInfo(c *gin.Context) {
	httpx.OK(c, h.settingsService.WebInfo())
}
