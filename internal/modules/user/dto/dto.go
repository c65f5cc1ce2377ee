package dto

import "time"

type AdminUserListRequest struct {
	Search string
	Role   string
	Status string // active | inactive
	Page   int
	Limit  int
}

type AdminUpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=reader admin"`
	IsActive *bool   `json:"isActive"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
}

type AuthorStats struct {
	TotalBlogs int64 `json:"totalBlogs"`
	TotalViews int64 `json:"totalViews"`
	TotalLikes int64 `json:"totalLikes"`
}

type RecentBlog struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Views     int64     `json:"views"`
	Likes     int64     `json:"likesCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminUserDetail struct {
	User        interface{}  `json:"user"`
	Stats       AuthorStats  `json:"stats"`
	RecentBlogs []RecentBlog `json:"recentBlogs"`
}
