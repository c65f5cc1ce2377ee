package repo

import (
	"time"

	"blog-platform-server/internal/model"
)

// AdminUserFilter 管理端用户列表过滤条件，Active 为 nil 表示不过滤。
type AdminUserFilter struct {
	Search string
	Role   string
	Active *bool
	Offset int
	Limit  int
}

type BlogAggregate struct {
	TotalBlogs int64
	TotalViews int64
	TotalLikes int64
}

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	UpdateByID(userID uint, updates map[string]interface{}) error
	UpdateLastLogin(userID uint, at time.Time) error
	EmailExists(email string, excludeUserID *uint) (bool, error)
	AdminListUsers(filter AdminUserFilter) ([]model.User, int64, error)
	DeactivateWithCascade(userID uint) error
	AuthorBlogAggregate(authorID uint) (BlogAggregate, error)
	RecentBlogsByAuthor(authorID uint, limit int) ([]model.Blog, error)
}
