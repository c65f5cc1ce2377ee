package session

import (
	"context"
	"errors"
	"time"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/utils"

	"github.com/google/uuid"
)

var ErrTokenRevoked = errors.New("token revoked")

// Manager 负责签发、解析和吊销登录令牌。
type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoked *RevocationList
}

func NewManager(cfg config.JWTConfig, revoked *RevocationList) *Manager {
	hours := cfg.ExpirationHours
	if hours <= 0 {
		hours = 720
	}
	return &Manager{
		secret:  []byte(cfg.Secret),
		ttl:     time.Duration(hours) * time.Hour,
		revoked: revoked,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(userID uint, role string) (string, error) {
	return utils.GenerateLoginToken(m.secret, userID, role, uuid.NewString(), m.ttl)
}

// Parse 校验令牌签名、有效期与吊销状态。
func (m *Manager) Parse(ctx context.Context, token string) (*utils.LoginClaims, error) {
	claims, err := utils.ParseLoginToken(m.secret, token)
	if err != nil {
		return nil, err
	}
	if m.revoked != nil && m.revoked.IsRevoked(ctx, claims.RegisteredClaims.ID) {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke 使令牌在剩余有效期内失效，无效令牌直接忽略。
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if m.revoked == nil || token == "" {
		return nil
	}
	claims, err := utils.ParseLoginToken(m.secret, token)
	if err != nil {
		return nil
	}
	until := time.Now().Add(m.ttl)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	return m.revoked.Revoke(ctx, claims.RegisteredClaims.ID, until)
}
