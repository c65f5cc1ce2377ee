package repo

import (
	"time"

	"blog-platform-server/internal/model"
)

type Totals struct {
	Users    int64
	Blogs    int64
	Comments int64
	Views    int64
}

type CategoryCount struct {
	Category string
	Total    int64
}

// StatsStore 仪表盘统计所需的只读查询，全部只计入有效记录。
type StatsStore interface {
	Totals() (Totals, error)
	RecentBlogs(limit int) ([]model.Blog, error)
	RecentUsers(limit int) ([]model.User, error)
	PublishedCountsByCategory() ([]CategoryCount, error)
	BlogCreationTimesSince(since time.Time) ([]time.Time, error)
}
