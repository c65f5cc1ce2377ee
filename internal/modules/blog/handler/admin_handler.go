package handler

import (
	"strconv"

	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminListBlogs 管理端博客列表
func (h *Handler) AdminListBlogs(c *gin.Context) {
	page := httpx.ParsePage(c)
	authorID, _ := strconv.ParseUint(c.Query("author"), 10, 64)

	blogs, total, err := h.blogService.AdminListBlogs(httpx.CurrentActor(c), moduledto.AdminBlogFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		AuthorID: uint(authorID),
	}, page.Offset(), page.Limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取博客列表失败")
		return
	}

	httpx.List(c, "blogs", blogs, len(blogs), total, page)
}

// AdminUpdateBlogStatus 修改博客状态或启用标记
func (h *Handler) AdminUpdateBlogStatus(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}

	var req moduledto.AdminBlogStatusRequest
	if !httpx.BindJSONDescribed(c, &req, utils.ValidationMessage) {
		return
	}

	blog, err := h.blogService.AdminUpdateBlogStatus(httpx.CurrentActor(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新博客状态失败")
		return
	}

	httpx.OKMessage(c, "博客状态已更新", gin.H{"blog": blog})
}

// AdminListComments 管理端评论列表
func (h *Handler) AdminListComments(c *gin.Context) {
	page := httpx.ParsePage(c)
	blogID, _ := strconv.ParseUint(c.Query("blog"), 10, 64)

	comments, total, err := h.blogService.AdminListComments(httpx.CurrentActor(c), moduledto.AdminCommentFilter{
		Status: c.Query("status"),
		BlogID: uint(blogID),
	}, page.Offset(), page.Limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论列表失败")
		return
	}

	httpx.List(c, "comments", comments, len(comments), total, page)
}

// AdminUpdateCommentStatus 启用或停用评论
func (h *Handler) AdminUpdateCommentStatus(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的评论ID")
		return
	}

	var req moduledto.AdminCommentStatusRequest
	if !httpx.BindJSONDescribed(c, &req, utils.ValidationMessage) {
		return
	}

	comment, err := h.blogService.AdminUpdateCommentStatus(httpx.CurrentActor(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新评论状态失败")
		return
	}

	httpx.OKMessage(c, "评论状态已更新", gin.H{"comment": comment})
}
