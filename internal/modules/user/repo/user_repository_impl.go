package repo

import (
	"strings"
	"time"

	"blog-platform-server/internal/model"
	"blog-platform-server/internal/utils"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateByID(userID uint, updates map[string]interface{}) error {
	var user model.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return err
	}
	return r.db.Model(&user).Updates(updates).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).UpdateColumn("last_login", at).Error
}

// EmailExists 检查邮箱是否已被占用，停用账号同样计入。
func (r *UserRepository) EmailExists(email string, excludeUserID *uint) (bool, error) {
	query := r.db.Model(&model.User{}).Where("email = ?", email)
	if excludeUserID != nil {
		query = query.Where("id <> ?", *excludeUserID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) AdminListUsers(filter AdminUserFilter) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.db.Model(&model.User{})
	if kw := strings.TrimSpace(filter.Search); kw != "" {
		pattern := utils.ContainsPattern(kw)
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!')", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC, id DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeactivateWithCascade 在同一事务中停用用户及其全部博客和评论。
func (r *UserRepository) DeactivateWithCascade(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", userID).Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Blog{}).Where("author_id = ?", userID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Comment{}).Where("user_id = ?", userID).Update("is_active", false).Error
	})
}

func (r *UserRepository) AuthorBlogAggregate(authorID uint) (BlogAggregate, error) {
	var agg BlogAggregate
	err := r.db.Model(&model.Blog{}).
		Select("COUNT(*) AS total_blogs, COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(like_count), 0) AS total_likes").
		Where("author_id = ? AND is_active = ?", authorID, true).
		Scan(&agg).Error
	return agg, err
}

func (r *UserRepository) RecentBlogsByAuthor(authorID uint, limit int) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.Where("author_id = ? AND is_active = ?", authorID, true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}
