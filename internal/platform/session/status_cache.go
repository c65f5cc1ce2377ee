package session

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"blog-platform-server/internal/config"

	"github.com/redis/go-redis/v9"
)

const statusCacheTTL = 1 * time.Minute

// UserStatus 鉴权时需要的用户实时状态。
type UserStatus struct {
	Active bool
	Role   string
}

type cachedStatus struct {
	Status    UserStatus
	ExpiresAt time.Time
}

// StatusCache 缓存用户启用状态和角色，减少每个请求的数据库查询。
// 优先使用 Redis，不可用时回退到进程内缓存。
type StatusCache struct {
	client *redis.Client
	prefix string
	local  sync.Map // userID(uint) -> cachedStatus
}

func NewStatusCache(client *redis.Client, cfg config.RedisConfig) *StatusCache {
	return &StatusCache{client: client, prefix: cfg.Prefix}
}

func (c *StatusCache) Get(ctx context.Context, userID uint) (UserStatus, bool) {
	if c.client != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		raw, err := c.client.Get(ctx, c.key(userID)).Result()
		if err == nil {
			if status, ok := decodeStatus(raw); ok {
				c.storeLocal(userID, status)
				return status, true
			}
		}
	}

	if val, ok := c.local.Load(userID); ok {
		cached, typeOk := val.(cachedStatus)
		if typeOk && time.Now().Before(cached.ExpiresAt) {
			return cached.Status, true
		}
		c.local.Delete(userID)
	}
	return UserStatus{}, false
}

func (c *StatusCache) Set(ctx context.Context, userID uint, status UserStatus) {
	c.storeLocal(userID, status)

	if c.client != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = c.client.Set(ctx, c.key(userID), encodeStatus(status), statusCacheTTL).Err()
	}
}

// Evict 清除指定用户的状态缓存，停用或改角色后立即生效。
func (c *StatusCache) Evict(ctx context.Context, userID uint) {
	c.local.Delete(userID)

	if c.client != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = c.client.Del(ctx, c.key(userID)).Err()
	}
}

func (c *StatusCache) storeLocal(userID uint, status UserStatus) {
	c.local.Store(userID, cachedStatus{Status: status, ExpiresAt: time.Now().Add(statusCacheTTL)})
}

func (c *StatusCache) key(userID uint) string {
	return RedisKey(c.prefix, "auth", "user_status", strconv.FormatUint(uint64(userID), 10))
}

func encodeStatus(status UserStatus) string {
	active := "0"
	if status.Active {
		active = "1"
	}
	return active + ":" + status.Role
}

func decodeStatus(raw string) (UserStatus, bool) {
	active, role, found := strings.Cut(raw, ":")
	if !found || (active != "0" && active != "1") {
		return UserStatus{}, false
	}
	return UserStatus{Active: active == "1", Role: role}, true
}
