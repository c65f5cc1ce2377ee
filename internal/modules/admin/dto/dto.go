package dto

import "time"

type Totals struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalBlogs    int64 `json:"totalBlogs"`
	TotalComments int64 `json:"totalComments"`
	TotalViews    int64 `json:"totalViews"`
}

type RecentBlogAuthor struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type RecentBlog struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Category  string           `json:"category"`
	Status    string           `json:"status"`
	Views     int64            `json:"views"`
	Likes     int64            `json:"likesCount"`
	Author    RecentBlogAuthor `json:"author"`
	CreatedAt time.Time        `json:"createdAt"`
}

type RecentUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type MonthlyStat struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type SystemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

type DashboardStats struct {
	Stats           Totals         `json:"stats"`
	RecentBlogs     []RecentBlog   `json:"recentBlogs"`
	RecentUsers     []RecentUser   `json:"recentUsers"`
	BlogsByCategory []CategoryStat `json:"blogsByCategory"`
	MonthlyStats    []MonthlyStat  `json:"monthlyStats"`
	System          SystemInfo     `json:"system"`
}
