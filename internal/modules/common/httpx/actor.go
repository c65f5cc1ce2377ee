package httpx

import (
	"strconv"

	"blog-platform-server/internal/policy"

	"github.com/gin-gonic/gin"
)

// 认证中间件写入的上下文键
const (
	ContextKeyUserID = "id"
	ContextKeyRole   = "role"
	ContextKeyToken  = "token"
)

// SetActor 记录已认证用户，供后续处理器读取。
func SetActor(c *gin.Context, userID uint, role string) {
	c.Set(ContextKeyUserID, userID)
	c.Set(ContextKeyRole, role)
}

// CurrentActor 读取当前请求主体，未认证时返回匿名主体。
func CurrentActor(c *gin.Context) policy.Actor {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return policy.Anonymous()
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return policy.Anonymous()
	}
	return policy.NewActor(userID, c.GetString(ContextKeyRole))
}

// ParseIDParam 解析路径中的数字 ID。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
