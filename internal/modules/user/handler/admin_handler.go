package handler

import (
	"blog-platform-server/internal/modules/common/httpx"
	moduledto "blog-platform-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// ListUsers 获取用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page := httpx.ParsePage(c)

	users, total, err := h.userService.AdminListUsers(httpx.CurrentActor(c), moduledto.AdminUserListRequest{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户列表失败")
		return
	}

	httpx.List(c, "users", users, len(users), total, page)
}

// GetUser 获取指定用户详情及其博客统计
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	detail, err := h.userService.AdminGetUser(httpx.CurrentActor(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户失败")
		return
	}

	httpx.OK(c, detail)
}

// UpdateUser 修改用户信息
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	var req moduledto.AdminUpdateUserRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	user, err := h.userService.AdminUpdateUser(c.Request.Context(), httpx.CurrentActor(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户失败")
		return
	}

	httpx.OKMessage(c, "更新成功", user)
}

// DeleteUser 停用用户（软删除），其博客与评论一并停用
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), httpx.CurrentActor(c), id); err != nil {
		httpx.WriteServiceError(c, err, "删除用户失败")
		return
	}

	httpx.OKMessage(c, "用户已删除", nil)
}
