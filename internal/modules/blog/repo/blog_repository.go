package repo

import (
	"errors"

	"blog-platform-server/internal/model"
)

// ErrLikeConflict 乐观锁模式下重试次数耗尽。
var ErrLikeConflict = errors.New("like count update conflict")

// 博客列表排序方式
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
)

// BlogQuery 博客列表查询条件，零值字段不参与过滤。
type BlogQuery struct {
	Active   *bool
	Status   string
	Category string
	AuthorID uint
	Tag      string
	Search   string
	Sort     string
	Offset   int
	Limit    int
}

// LikeOptions 点赞计数的并发策略。
type LikeOptions struct {
	Optimistic bool
	MaxRetries int
}

type LikeState struct {
	Likes int64
	Liked bool
}

type BlogStore interface {
	FindByID(id uint) (*model.Blog, error)
	Create(blog *model.Blog) error
	Update(blogID uint, updates map[string]interface{}, tags []string, replaceTags bool) error
	DeactivateWithComments(blogID uint) error
	IncrementViews(blogID uint) error
	List(query BlogQuery) ([]model.Blog, int64, error)
	CountActiveComments(blogIDs []uint) (map[uint]int64, error)
	CountPublishedByCategory() (map[string]int64, error)
	IsLikedBy(blogID, userID uint) (bool, error)
	ToggleLike(blogID, userID uint, opts LikeOptions) (LikeState, error)
}

// CommentQuery 管理端评论列表查询条件。
type CommentQuery struct {
	Active *bool
	BlogID uint
	Offset int
	Limit  int
}

type CommentStore interface {
	FindByID(id uint) (*model.Comment, error)
	Create(comment *model.Comment) error
	ListActiveByBlog(blogID uint) ([]model.Comment, error)
	SetActive(commentID uint, active bool) error
	AdminList(query CommentQuery) ([]model.Comment, int64, error)
}
