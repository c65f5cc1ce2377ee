package handler

import (
	"net/http"
	"strings"

	moduledto "blog-platform-server/internal/modules/auth/dto"
	authservice "blog-platform-server/internal/modules/auth/service"
	"blog-platform-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	result, err := h.authService.Register(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	h.writeAuthResult(c, http.StatusCreated, "注册成功", result)
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	result, err := h.authService.Login(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	h.writeAuthResult(c, http.StatusOK, "登录成功", result)
}

// AdminLogin 管理后台登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req moduledto.LoginRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	result, err := h.authService.AdminLogin(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	h.writeAuthResult(c, http.StatusOK, "登录成功", result)
}

// Logout 退出登录，吊销当前令牌并清除 Cookie
func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetString(httpx.ContextKeyToken)); err != nil {
		httpx.WriteServiceError(c, err, "退出登录失败")
		return
	}

	h.clearTokenCookie(c)
	httpx.OKMessage(c, "已退出登录", nil)
}

// Me 获取当前用户
func (h *Handler) Me(c *gin.Context) {
	user, err := h.authService.Me(httpx.CurrentActor(c))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}

	httpx.OK(c, gin.H{"user": user})
}

// UpdateProfile 修改个人资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req moduledto.UpdateProfileRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), httpx.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新资料失败")
		return
	}

	httpx.OKMessage(c, "资料已更新", gin.H{"user": user})
}

// ChangePassword 修改密码
func (h *Handler) ChangePassword(c *gin.Context) {
	var req moduledto.ChangePasswordRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}

	if err := h.authService.ChangePassword(httpx.CurrentActor(c), req); err != nil {
		httpx.WriteServiceError(c, err, "修改密码失败")
		return
	}

	httpx.OKMessage(c, "密码修改成功", nil)
}

// UploadAvatar 上传头像
func (h *Handler) UploadAvatar(c *gin.Context) {
	var req moduledto.UploadAvatarRequest
	if !httpx.BindJSON(c, &req, "参数格式错误") {
		return
	}
	if strings.TrimSpace(req.Avatar) == "" {
		httpx.BadRequest(c, "请提供头像图片")
		return
	}

	user, err := h.authService.UploadAvatar(c.Request.Context(), httpx.CurrentActor(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传头像失败")
		return
	}

	httpx.OKMessage(c, "头像已更新", gin.H{"user": user})
}

func (h *Handler) writeAuthResult(c *gin.Context, status int, message string, result *authservice.AuthResult) {
	h.setTokenCookie(c, result.Token)
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"token":   result.Token,
		"data":    gin.H{"user": result.User},
	})
}
