package handler

import (
	"net/http"

	"blog-platform-server/internal/modules/common/httpx"
	moduledto "blog-platform-server/internal/modules/media/dto"

	"github.com/gin-gonic/gin"
)

// UploadImage 上传编辑器内联图片，返回图床地址
func (h *Handler) UploadImage(c *gin.Context) {
	var req moduledto.UploadImageRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	url, err := h.mediaService.UploadInline(c.Request.Context(), req.Image)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "上传成功",
		"url":     url,
		"data":    moduledto.UploadImageResponse{URL: url},
	})
}
