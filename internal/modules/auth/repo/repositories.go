package repo

import (
	"time"

	"blog-platform-server/internal/model"
)

// UserStore 认证流程所需的用户存储能力。
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	UpdateByID(userID uint, updates map[string]interface{}) error
	UpdateLastLogin(userID uint, at time.Time) error
	EmailExists(email string, excludeUserID *uint) (bool, error)
}
