package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/policy"
	"blog-platform-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TokenParser 校验登录令牌（签名、有效期、是否已注销）。
type TokenParser interface {
	Parse(ctx context.Context, token string) (*utils.LoginClaims, error)
}

// StatusLoader 从数据库读取用户当前的启用状态与角色。
type StatusLoader interface {
	FindStatusByID(userID uint) (session.UserStatus, error)
}

// extractToken 优先读取 Authorization: Bearer，其次读取登录 Cookie。
func extractToken(c *gin.Context, cookieName string) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			return token, true
		}
	}
	return "", false
}

func JWTAuth(tokens TokenParser, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c, cookieName)
		if !ok {
			httpx.AbortWithError(c, http.StatusUnauthorized, service.ErrorCodeUnauthorized, "需要认证才能访问")
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), token)
		if err != nil {
			httpx.AbortWithError(c, http.StatusUnauthorized, service.ErrorCodeUnauthorized, "Token 无效或已过期")
			return
		}

		httpx.SetActor(c, claims.ID, claims.Role)
		c.Set(httpx.ContextKeyToken, token)
		c.Next()
	}
}

// OptionalAuth 有合法令牌时写入用户信息，否则按匿名访问继续处理。
func OptionalAuth(tokens TokenParser, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c, cookieName)
		if ok {
			if claims, err := tokens.Parse(c.Request.Context(), token); err == nil {
				httpx.SetActor(c, claims.ID, claims.Role)
				c.Set(httpx.ContextKeyToken, token)
			}
		}
		c.Next()
	}
}

// UserStatusCheck 拦截已停用账号，并以数据库中的角色覆盖令牌中的角色。
func UserStatusCheck(cache *session.StatusCache, loader StatusLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := httpx.CurrentActor(c)
		if !actor.Authenticated {
			httpx.AbortWithError(c, http.StatusUnauthorized, service.ErrorCodeUnauthorized, "未获取到用户信息")
			return
		}

		ctx := c.Request.Context()
		status, found := cache.Get(ctx, actor.ID)
		if !found {
			loaded, err := loader.FindStatusByID(actor.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					httpx.AbortWithError(c, http.StatusUnauthorized, service.ErrorCodeUnauthorized, "用户不存在")
					return
				}
				log.Error().Err(err).Uint("user_id", actor.ID).Msg("❌ 读取用户状态失败")
				httpx.AbortWithError(c, http.StatusInternalServerError, service.ErrorCodeInternal, "读取用户状态失败")
				return
			}
			status = loaded
			cache.Set(ctx, actor.ID, status)
		}

		if !status.Active {
			httpx.AbortWithError(c, http.StatusForbidden, service.ErrorCodeForbidden, "账号已停用")
			return
		}

		httpx.SetActor(c, actor.ID, status.Role)
		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.CanAccessAdminArea(httpx.CurrentActor(c)) {
			httpx.AbortWithError(c, http.StatusForbidden, service.ErrorCodeForbidden, "需要管理员权限才能访问")
			return
		}
		c.Next()
	}
}
