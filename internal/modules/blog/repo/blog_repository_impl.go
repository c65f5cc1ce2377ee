package repo

import (
	"errors"
	"strings"
	"time"

	"blog-platform-server/internal/model"
	"blog-platform-server/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errStaleVersion = errors.New("stale blog version")

type BlogRepository struct {
	db *gorm.DB
}

func orderedTags(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *BlogRepository) FindByID(id uint) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.Preload("Author").Preload("Tags", orderedTags).First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create 写入博客及其标签。
func (r *BlogRepository) Create(blog *model.Blog) error {
	return r.db.Omit("Author").Create(blog).Error
}

// Update 在同一事务中更新博客字段，并在 replaceTags 为 true 时整体替换标签。
func (r *BlogRepository) Update(blogID uint, updates map[string]interface{}, tags []string, replaceTags bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if replaceTags {
			if err := tx.Where("blog_id = ?", blogID).Delete(&model.BlogTag{}).Error; err != nil {
				return err
			}
			if len(tags) > 0 {
				rows := make([]model.BlogTag, 0, len(tags))
				for i, tag := range tags {
					rows = append(rows, model.BlogTag{BlogID: blogID, Position: i, Value: tag})
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
			if len(updates) == 0 {
				// 仅修改标签时也刷新 updated_at
				return tx.Model(&model.Blog{ID: blogID}).Update("updated_at", time.Now()).Error
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&model.Blog{ID: blogID}).Updates(updates).Error
	})
}

// DeactivateWithComments 软删除博客并级联停用其全部评论。
func (r *BlogRepository) DeactivateWithComments(blogID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Blog{}).Where("id = ?", blogID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Comment{}).Where("blog_id = ?", blogID).Update("is_active", false).Error
	})
}

// IncrementViews 原子地将浏览量加一，不修改 updated_at。
func (r *BlogRepository) IncrementViews(blogID uint) error {
	return r.db.Model(&model.Blog{}).Where("id = ?", blogID).UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *BlogRepository) List(q BlogQuery) ([]model.Blog, int64, error) {
	var blogs []model.Blog
	var total int64

	query := r.db.Model(&model.Blog{})
	if q.Active != nil {
		query = query.Where("is_active = ?", *q.Active)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.AuthorID != 0 {
		query = query.Where("author_id = ?", q.AuthorID)
	}
	if tag := strings.TrimSpace(q.Tag); tag != "" {
		query = query.Where("id IN (?)", r.db.Model(&model.BlogTag{}).Select("blog_id").Where("value = ?", tag))
	}
	if kw := strings.TrimSpace(q.Search); kw != "" {
		pattern := utils.ContainsPattern(kw)
		query = query.Where("(LOWER(title) LIKE ? ESCAPE '!' OR LOWER(content) LIKE ? ESCAPE '!')", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").Preload("Tags", orderedTags).
		Order(listOrder(q.Sort)).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func listOrder(sort string) string {
	switch sort {
	case SortPopular:
		return "views DESC, like_count DESC, id DESC"
	case SortOldest:
		return "created_at ASC, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

func (r *BlogRepository) CountActiveComments(blogIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(blogIDs))
	if len(blogIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		BlogID uint
		Total  int64
	}
	err := r.db.Model(&model.Comment{}).
		Select("blog_id, COUNT(*) AS total").
		Where("blog_id IN ? AND is_active = ?", blogIDs, true).
		Group("blog_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.BlogID] = row.Total
	}
	return counts, nil
}

// CountPublishedByCategory 统计各分类下已发布且有效的博客数。
func (r *BlogRepository) CountPublishedByCategory() (map[string]int64, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	err := r.db.Model(&model.Blog{}).
		Select("category, COUNT(*) AS total").
		Where("is_active = ? AND status = ?", true, "published").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}

func (r *BlogRepository) IsLikedBy(blogID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.BlogLike{}).Where("blog_id = ? AND user_id = ?", blogID, userID).Count(&count).Error
	return count > 0, err
}

// ToggleLike 切换点赞关系并回写计数。
// 计数始终由关系表重新统计得到；乐观锁模式下通过 version 检测并发写入并重试。
func (r *BlogRepository) ToggleLike(blogID, userID uint, opts LikeOptions) (LikeState, error) {
	attempts := opts.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		state, err := r.toggleLikeOnce(blogID, userID, opts.Optimistic)
		if err == nil {
			return state, nil
		}
		// 并发插入同一点赞关系或版本号过期时重试
		if !errors.Is(err, errStaleVersion) && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return LikeState{}, err
		}
	}
	return LikeState{}, ErrLikeConflict
}

func (r *BlogRepository) toggleLikeOnce(blogID, userID uint, optimistic bool) (LikeState, error) {
	var state LikeState
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var blog model.Blog
		if err := tx.Select("id", "version").First(&blog, blogID).Error; err != nil {
			return err
		}

		like := model.BlogLike{BlogID: blogID, UserID: userID}
		res := tx.Where(&like).Delete(&model.BlogLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			state.Liked = true
		}

		if err := tx.Model(&model.BlogLike{}).Where("blog_id = ?", blogID).Count(&state.Likes).Error; err != nil {
			return err
		}

		update := tx.Model(&model.Blog{}).Where("id = ?", blogID)
		if optimistic {
			update = update.Where("version = ?", blog.Version)
		}
		res = update.UpdateColumns(map[string]interface{}{
			"like_count": state.Likes,
			"version":    gorm.Expr("version + ?", 1),
		})
		if res.Error != nil {
			return res.Error
		}
		if optimistic && res.RowsAffected == 0 {
			return errStaleVersion
		}
		return nil
	})
	return state, err
}

type CommentRepository struct {
	db *gorm.DB
}

func blogTitleOnly(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title")
}

// FindByID 读取评论并预加载评论者与所属博客标题。
func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Preload("User").Preload("Blog", blogTitleOnly).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Omit(clause.Associations).Create(comment).Error
}

// ListActiveByBlog 返回博客下的有效评论，最新的在前。
func (r *CommentRepository) ListActiveByBlog(blogID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").
		Where("blog_id = ? AND is_active = ?", blogID, true).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) SetActive(commentID uint, active bool) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", commentID).Update("is_active", active).Error
}

func (r *CommentRepository) AdminList(q CommentQuery) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64

	query := r.db.Model(&model.Comment{})
	if q.Active != nil {
		query = query.Where("is_active = ?", *q.Active)
	}
	if q.BlogID != 0 {
		query = query.Where("blog_id = ?", q.BlogID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").
		Preload("Blog", blogTitleOnly).
		Order("created_at DESC, id DESC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
