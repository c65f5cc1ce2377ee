package handler

import (
	"strconv"

	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListBlogs 公开博客列表，支持分类、作者、标签、关键字过滤与排序
func (h *Handler) ListBlogs(c *gin.Context) {
	page := httpx.ParsePage(c)
	authorID, _ := strconv.ParseUint(c.Query("author"), 10, 64)

	blogs, total, err := h.blogService.ListBlogs(moduledto.BlogListFilter{
		Category: c.Query("category"),
		AuthorID: uint(authorID),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}, page.Offset(), page.Limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取博客列表失败")
		return
	}

	httpx.List(c, "blogs", blogs, len(blogs), total, page)
}

// SearchBlogs 按关键字搜索博客
func (h *Handler) SearchBlogs(c *gin.Context) {
	page := httpx.ParsePage(c)

	blogs, total, err := h.blogService.SearchBlogs(c.Query("q"), c.Query("category"), page.Offset(), page.Limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "搜索博客失败")
		return
	}

	httpx.List(c, "blogs", blogs, len(blogs), total, page)
}

// ListCategories 获取分类及其博客数
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.blogService.ListCategories()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取分类失败")
		return
	}

	httpx.OK(c, gin.H{"categories": categories})
}

// ListUserBlogs 获取指定作者已发布的博客
func (h *Handler) ListUserBlogs(c *gin.Context) {
	authorID, ok := httpx.ParseIDParam(c, "userId")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}
	page := httpx.ParsePage(c)

	blogs, total, err := h.blogService.ListAuthorBlogs(authorID, page.Offset(), page.Limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户博客失败")
		return
	}

	httpx.List(c, "blogs", blogs, len(blogs), total, page)
}

// ListMyBlogs 获取当前用户的博客（含草稿）
func (h *Handler) ListMyBlogs(c *gin.Context) {
	page := httpx.ParsePage(c)

	blogs, total, err := h.blogService.ListMyBlogs(httpx.CurrentActor(c), c.Query("status"), page.Offset(), page.Limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取我的博客失败")
		return
	}

	httpx.List(c, "blogs", blogs, len(blogs), total, page)
}

// GetBlog 获取博客详情，浏览量加一
func (h *Handler) GetBlog(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的博客ID")
		return
	}

	blog, err := h.blogService.ViewBlog(httpx.CurrentActor(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取博客失败")
		return
	}

	httpx.OK(c, gin.H{"blog": blog})
}
