package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// TagList 标签列表，JSON 中既可以是字符串数组，也可以是逗号分隔的字符串。
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	var raw []string
	switch {
	case len(data) > 0 && data[0] == '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	case len(data) > 0 && data[0] == '"':
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		raw = strings.Split(joined, ",")
	default:
		return errors.New("tags must be an array or a comma separated string")
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	*t = tags
	return nil
}

type CreateBlogRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"required,min=50"`
	Excerpt  string  `json:"excerpt" validate:"max=300"`
	Category string  `json:"category" validate:"required,blogcategory"`
	Tags     TagList `json:"tags" validate:"dive,max=30"`
	Image    string  `json:"image"`
	Status   string  `json:"status" validate:"omitempty,blogstatus"`
}

// UpdateBlogRequest 未提供或为空字符串的字段保持不变；Tags 非 nil 时整体替换。
type UpdateBlogRequest struct {
	Title    *string  `json:"title" validate:"omitempty,max=200"`
	Content  *string  `json:"content" validate:"omitempty,min=50"`
	Excerpt  *string  `json:"excerpt" validate:"omitempty,max=300"`
	Category *string  `json:"category" validate:"omitempty,blogcategory"`
	Tags     *TagList `json:"tags" validate:"omitempty,dive,max=30"`
	Image    *string  `json:"image"`
	Status   *string  `json:"status" validate:"omitempty,blogstatus"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type UploadImageRequest struct {
	Image string `json:"image"`
}

type AdminBlogStatusRequest struct {
	Status   *string `json:"status" binding:"omitempty,blogstatus"`
	IsActive *bool   `json:"isActive"`
}

type AdminCommentStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// BlogListFilter 公开列表的过滤与排序条件。
type BlogListFilter struct {
	Category string
	AuthorID uint
	Tag      string
	Search   string
	Sort     string // newest | oldest | popular
}

type AdminBlogFilter struct {
	Search   string
	Category string
	Status   string // active | inactive | draft | published | archived
	AuthorID uint
}

type AdminCommentFilter struct {
	Status string // active | inactive
	BlogID uint
}

type AuthorSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio,omitempty"`
}

type BlogItem struct {
	ID            uint          `json:"id"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Category      string        `json:"category"`
	Tags          []string      `json:"tags"`
	Image         string        `json:"image"`
	Author        AuthorSummary `json:"author"`
	Views         int64         `json:"views"`
	LikesCount    int64         `json:"likesCount"`
	CommentsCount int64         `json:"commentsCount"`
	Status        string        `json:"status"`
	IsActive      bool          `json:"isActive"`
	ReadTime      int           `json:"readTime"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type BlogDetail struct {
	BlogItem
	Content  string        `json:"content"`
	Comments []CommentItem `json:"comments"`
	IsLiked  *bool         `json:"isLiked,omitempty"`
}

type CommentItem struct {
	ID        uint          `json:"id"`
	BlogID    uint          `json:"blogId"`
	Text      string        `json:"text"`
	User      AuthorSummary `json:"user"`
	CreatedAt time.Time     `json:"createdAt"`
}

type AdminCommentUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

type AdminCommentBlog struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type AdminCommentItem struct {
	ID        uint             `json:"id"`
	Text      string           `json:"text"`
	IsActive  bool             `json:"isActive"`
	User      AdminCommentUser `json:"user"`
	Blog      AdminCommentBlog `json:"blog"`
	CreatedAt time.Time        `json:"createdAt"`
}

type LikeResult struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
