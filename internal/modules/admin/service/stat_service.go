package service

import (
	"runtime"
	"time"

	"blog-platform-server/internal/consts"
	moduledto "blog-platform-server/internal/modules/admin/dto"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/policy"
)

// DashboardStats 汇总后台仪表盘数据。
func (s *Service) DashboardStats(actor policy.Actor, now time.Time) (*moduledto.DashboardStats, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, platformservice.NewForbiddenError("需要管理员权限")
	}

	totals, err := s.statsStore.Totals()
	if err != nil {
		return nil, platformservice.WrapInternalError("统计数据失败", err)
	}

	blogs, err := s.statsStore.RecentBlogs(consts.DashboardRecentLimit)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取最新博客失败", err)
	}
	recentBlogs := make([]moduledto.RecentBlog, 0, len(blogs))
	for _, b := range blogs {
		recentBlogs = append(recentBlogs, moduledto.RecentBlog{
			ID:       b.ID,
			Title:    b.Title,
			Category: b.Category,
			Status:   b.Status,
			Views:    b.Views,
			Likes:    b.LikeCount,
			Author: moduledto.RecentBlogAuthor{
				ID:     b.Author.ID,
				Name:   b.Author.Name,
				Avatar: b.Author.Avatar,
			},
			CreatedAt: b.CreatedAt,
		})
	}

	users, err := s.statsStore.RecentUsers(consts.DashboardRecentLimit)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取最新用户失败", err)
	}
	recentUsers := make([]moduledto.RecentUser, 0, len(users))
	for _, u := range users {
		recentUsers = append(recentUsers, moduledto.RecentUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Avatar:    u.Avatar,
			CreatedAt: u.CreatedAt,
		})
	}

	categoryRows, err := s.statsStore.PublishedCountsByCategory()
	if err != nil {
		return nil, platformservice.WrapInternalError("统计分类数据失败", err)
	}
	byCategory := make([]moduledto.CategoryStat, 0, len(categoryRows))
	for _, row := range categoryRows {
		byCategory = append(byCategory, moduledto.CategoryStat{Category: row.Category, Count: row.Total})
	}

	since := MonthlyWindowStart(now)
	times, err := s.statsStore.BlogCreationTimesSince(since)
	if err != nil {
		return nil, platformservice.WrapInternalError("统计月度数据失败", err)
	}

	return &moduledto.DashboardStats{
		Stats: moduledto.Totals{
			TotalUsers:    totals.Users,
			TotalBlogs:    totals.Blogs,
			TotalComments: totals.Comments,
			TotalViews:    totals.Views,
		},
		RecentBlogs:     recentBlogs,
		RecentUsers:     recentUsers,
		BlogsByCategory: byCategory,
		MonthlyStats:    BucketByMonth(times, now.Location()),
		System: moduledto.SystemInfo{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}

// MonthlyWindowStart 返回包含当月在内最近 12 个月窗口的起点（当月往前 11 个月的 1 号零点）。
func MonthlyWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(consts.DashboardMonthWindow-1), 1, 0, 0, 0, 0, now.Location())
}

// BucketByMonth 按年月计数，结果按时间升序，没有数据的月份不出现。
func BucketByMonth(times []time.Time, loc *time.Location) []moduledto.MonthlyStat {
	stats := make([]moduledto.MonthlyStat, 0)
	for _, t := range times {
		t = t.In(loc)
		year, month := t.Year(), int(t.Month())
		if n := len(stats); n > 0 && stats[n-1].Year == year && stats[n-1].Month == month {
			stats[n-1].Count++
			continue
		}
		stats = append(stats, moduledto.MonthlyStat{Year: year, Month: month, Count: 1})
	}
	return stats
}
