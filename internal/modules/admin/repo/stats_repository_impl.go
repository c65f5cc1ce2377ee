package repo

import (
	"time"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func (r *StatsRepository) Totals() (Totals, error) {
	var totals Totals
	if err := r.db.Model(&model.User{}).Where("is_active = ?", true).Count(&totals.Users).Error; err != nil {
		return Totals{}, err
	}
	if err := r.db.Model(&model.Comment{}).Where("is_active = ?", true).Count(&totals.Comments).Error; err != nil {
		return Totals{}, err
	}

	var blogAgg struct {
		Blogs int64
		Views int64
	}
	err := r.db.Model(&model.Blog{}).
		Select("COUNT(*) AS blogs, COALESCE(SUM(views), 0) AS views").
		Where("is_active = ?", true).
		Scan(&blogAgg).Error
	if err != nil {
		return Totals{}, err
	}
	totals.Blogs = blogAgg.Blogs
	totals.Views = blogAgg.Views
	return totals, nil
}

func (r *StatsRepository) RecentBlogs(limit int) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.Preload("Author").
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

func (r *StatsRepository) RecentUsers(limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// PublishedCountsByCategory 按数量降序返回各分类的已发布博客数。
func (r *StatsRepository) PublishedCountsByCategory() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Model(&model.Blog{}).
		Select("category, COUNT(*) AS total").
		Where("is_active = ? AND status = ?", true, consts.BlogStatusPublished).
		Group("category").
		Order("total DESC, category ASC").
		Scan(&rows).Error
	return rows, err
}

// BlogCreationTimesSince 返回指定时间之后创建的有效博客的创建时间，按月分桶在服务层完成。
func (r *StatsRepository) BlogCreationTimesSince(since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&model.Blog{}).
		Where("is_active = ? AND created_at >= ?", true, since).
		Order("created_at ASC").
		Pluck("created_at", &times).Error
	return times, err
}
