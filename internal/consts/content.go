package consts

// 用户角色
const (
	RoleReader = "reader"
	RoleAdmin  = "admin"
)

// 博客生命周期状态
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// 内容约束
const (
	UserNameMaxLength      = 50
	UserBioMaxLength       = 500
	PasswordMinLength      = 6
	BlogTitleMaxLength     = 200
	BlogContentMinLength   = 50
	BlogExcerptMaxLength   = 300
	BlogTagMaxLength       = 30
	CommentTextMaxLength   = 500
	ReadTimeWordsPerMinute = 200
)

// 分页
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// 仪表盘
const (
	DashboardRecentLimit = 5
	DashboardMonthWindow = 12
)

// Categories 固定的博客分类，顺序即展示顺序。
var Categories = []string{
	"technology",
	"lifestyle",
	"travel",
	"food",
	"health",
	"business",
	"entertainment",
	"sports",
	"politics",
	"education",
	"science",
	"other",
}

var BlogStatuses = []string{BlogStatusDraft, BlogStatusPublished, BlogStatusArchived}

var Roles = []string{RoleReader, RoleAdmin}

func IsValidCategory(category string) bool {
	return contains(Categories, category)
}

func IsValidBlogStatus(status string) bool {
	return contains(BlogStatuses, status)
}

func IsValidRole(role string) bool {
	return contains(Roles, role)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
