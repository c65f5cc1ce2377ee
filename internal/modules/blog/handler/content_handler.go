package handler

import (
	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// CreateBlog 发布博客
func (h *Handler) CreateBlog(c *gin.Context) {
	var req moduledto.CreateBlogRequest
	if !httpx.BindJSONDescribed(c, &req, utils.ValidationMessage) {
		return
	}

	blog, err := h.blogService.CreateBlog(c.Request.Context(), httpx.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建博客失败")
		return
	}

	httpx.Created(c, "博客发布成功", gin.H{"blog": blog})
}

// UpdateBlog 修改博客
func (h *Handler) UpdateBlog(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}

	var req moduledto.UpdateBlogRequest
	if !httpx.BindJSONDescribed(c, &req, utils.ValidationMessage) {
		return
	}

	blog, err := h.blogService.UpdateBlog(c.Request.Context(), httpx.CurrentActor(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新博客失败")
		return
	}

	httpx.OKMessage(c, "博客更新成功", gin.H{"blog": blog})
}

// DeleteBlog 删除博客（软删除）
func (h *Handler) DeleteBlog(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}

	if err := h.blogService.DeleteBlog(httpx.CurrentActor(c), id); err != nil {
		httpx.WriteServiceError(c, err, "删除博客失败")
		return
	}

	httpx.OKMessage(c, "博客已删除", nil)
}

// ToggleLike 点赞或取消点赞
func (h *Handler) ToggleLike(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}

	result, err := h.blogService.ToggleLike(httpx.CurrentActor(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "点赞失败")
		return
	}

	httpx.OK(c, result)
}

// AddComment 发表评论
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}

	var req moduledto.CommentRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	comment, err := h.blogService.AddComment(c.Request.Context(), httpx.CurrentActor(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "评论失败")
		return
	}

	httpx.Created(c, "评论成功", gin.H{"comment": comment})
}

// DeleteComment 删除评论（软删除）
func (h *Handler) DeleteComment(c *gin.Context) {
	blogID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}
	commentID, ok := httpx.ParseIDParam(c, "commentId")
	if !ok {
		httpx.BadRequest(c, "无效的评论ID")
		return
	}

	if err := h.blogService.DeleteComment(httpx.CurrentActor(c), blogID, commentID); err != nil {
		httpx.WriteServiceError(c, err, "删除评论失败")
		return
	}

	httpx.OKMessage(c, "评论已删除", nil)
}
