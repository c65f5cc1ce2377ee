package handler

import (
	"time"

	"blog-platform-server/internal/config"
	authservice "blog-platform-server/internal/modules/auth/service"
)

// CookieOptions 登录 Cookie 的写出参数。
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// NewCookieOptions 从 JWT 配置推导 Cookie 参数，有效期与令牌一致。
func NewCookieOptions(cfg config.JWTConfig) CookieOptions {
	name := cfg.CookieName
	if name == "" {
		name = "token"
	}
	hours := cfg.ExpirationHours
	if hours <= 0 {
		hours = 720
	}
	return CookieOptions{
		Name:   name,
		Secure: cfg.CookieSecure,
		MaxAge: time.Duration(hours) * time.Hour,
	}
}

type Handler struct {
	authService *authservice.Service
	cookie      CookieOptions
}

func New(authService *authservice.Service, cookie CookieOptions) *Handler {
	return &Handler{authService: authService, cookie: cookie}
}
