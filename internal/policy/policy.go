// Package policy 集中定义资源访问规则。
//
// 所有函数都是纯函数：不访问存储、不返回错误，调用方根据布尔结果
// 自行转换为 Forbidden 等业务错误。
package policy

import "blog-platform-server/internal/consts"

// Actor 表示发起请求的主体，匿名访问时 Authenticated 为 false。
type Actor struct {
	ID            uint
	Role          string
	Authenticated bool
}

// BlogRef 判断博客权限所需的最小信息。
type BlogRef struct {
	AuthorID uint
}

// CommentRef 判断评论权限所需的最小信息。
type CommentRef struct {
	AuthorID uint
}

func Anonymous() Actor {
	return Actor{}
}

// NewActor 构造已认证主体。
func NewActor(id uint, role string) Actor {
	return Actor{ID: id, Role: role, Authenticated: true}
}

func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == consts.RoleAdmin
}

// CanModifyBlog 作者本人或管理员可以修改、删除博客。
func CanModifyBlog(actor Actor, blog BlogRef) bool {
	if !actor.Authenticated {
		return false
	}
	return actor.ID == blog.AuthorID || actor.IsAdmin()
}

// CanDeleteComment 评论作者本人或管理员可以删除评论。
func CanDeleteComment(actor Actor, comment CommentRef) bool {
	if !actor.Authenticated {
		return false
	}
	return actor.ID == comment.AuthorID || actor.IsAdmin()
}

func CanAccessAdminArea(actor Actor) bool {
	return actor.IsAdmin()
}

// CanDeleteSelf 禁止任何主体停用自己的账号。
func CanDeleteSelf(actor Actor, targetUserID uint) bool {
	return actor.ID != targetUserID
}
