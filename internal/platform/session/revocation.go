package session

import (
	"context"
	"sync"
	"time"

	"blog-platform-server/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RevocationList 记录已注销的令牌 ID，直到令牌自然过期。
type RevocationList struct {
	client *redis.Client
	prefix string
	local  sync.Map // jti -> time.Time
}

func NewRevocationList(client *redis.Client, cfg config.RedisConfig) *RevocationList {
	return &RevocationList{client: client, prefix: cfg.Prefix}
}

func (l *RevocationList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if tokenID == "" || ttl <= 0 {
		return nil
	}

	l.pruneLocal()
	l.local.Store(tokenID, until)

	if l.client != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := l.client.Set(ctx, l.key(tokenID), "1", ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("⚠️ 写入 Redis 令牌吊销记录失败，仅保留本地记录")
		}
	}
	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) bool {
	if tokenID == "" {
		return false
	}

	if val, ok := l.local.Load(tokenID); ok {
		if until, typeOk := val.(time.Time); typeOk && time.Now().Before(until) {
			return true
		}
		l.local.Delete(tokenID)
	}

	if l.client != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		n, err := l.client.Exists(ctx, l.key(tokenID)).Result()
		if err == nil && n > 0 {
			return true
		}
	}
	return false
}

func (l *RevocationList) pruneLocal() {
	now := time.Now()
	l.local.Range(func(key, value any) bool {
		if until, ok := value.(time.Time); !ok || !now.Before(until) {
			l.local.Delete(key)
		}
		return true
	})
}

func (l *RevocationList) key(tokenID string) string {
	return RedisKey(l.prefix, "auth", "revoked", tokenID)
}
