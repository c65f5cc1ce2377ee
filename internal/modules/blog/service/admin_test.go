package service

import (
	"testing"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/blog/dto"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/policy"
	"blog-platform-server/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminActor = policy.NewActor(1, consts.RoleAdmin)

// 测试内容：验证管理端博客列表不强制有效条件，status 参数可映射到启用标记或生命周期状态。
func TestAdminListBlogs_StatusMapping(t *testing.T) {
	gdb, _ := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "Author", consts.RoleReader)
	testutils.CreateBlog(t, gdb, author.ID, "Live", "food")
	draft := testutils.CreateBlog(t, gdb, author.ID, "Draft", "food")
	deleted := testutils.CreateBlog(t, gdb, author.ID, "Deleted", "food")
	gdb.Model(&model.Blog{}).Where("id = ?", draft.ID).Update("status", consts.BlogStatusDraft)
	gdb.Model(&model.Blog{}).Where("id = ?", deleted.ID).Update("is_active", false)

	_, total, err := testService.AdminListBlogs(adminActor, moduledto.AdminBlogFilter{}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	items, total, err := testService.AdminListBlogs(adminActor, moduledto.AdminBlogFilter{Status: "inactive"}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Deleted", items[0].Title)

	items, total, err = testService.AdminListBlogs(adminActor, moduledto.AdminBlogFilter{Status: consts.BlogStatusDraft}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Draft", items[0].Title)
}

// 测试内容：验证管理员可直接修改博客状态与启用标记，非法状态与空请求被拒绝。
func TestAdminUpdateBlogStatus(t *testing.T) {
	gdb, _ := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "Author", consts.RoleReader)
	blog := testutils.CreateBlog(t, gdb, author.ID, "Post", "food")

	item, err := testService.AdminUpdateBlogStatus(adminActor, blog.ID, moduledto.AdminBlogStatusRequest{
		Status:   strPtr(consts.BlogStatusArchived),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, consts.BlogStatusArchived, item.Status)
	assert.False(t, item.IsActive)

	_, err = testService.AdminUpdateBlogStatus(adminActor, blog.ID, moduledto.AdminBlogStatusRequest{Status: strPtr("removed")})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	_, err = testService.AdminUpdateBlogStatus(adminActor, blog.ID, moduledto.AdminBlogStatusRequest{})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	_, err = testService.AdminUpdateBlogStatus(adminActor, 9999, moduledto.AdminBlogStatusRequest{IsActive: boolPtr(true)})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证管理端评论列表附带邮箱与博客标题，管理员可恢复已删除的评论。
func TestAdminComments(t *testing.T) {
	gdb, _ := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "Author", consts.RoleReader)
	blog := testutils.CreateBlog(t, gdb, author.ID, "Post", "food")
	comment := testutils.CreateComment(t, gdb, author.ID, blog.ID, "hello")
	gdb.Model(&model.Comment{}).Where("id = ?", comment.ID).Update("is_active", false)

	items, total, err := testService.AdminListComments(adminActor, moduledto.AdminCommentFilter{Status: "inactive"}, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "author@example.com", items[0].User.Email)
	assert.Equal(t, "Post", items[0].Blog.Title)

	item, err := testService.AdminUpdateCommentStatus(adminActor, comment.ID, moduledto.AdminCommentStatusRequest{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, item.IsActive)

	_, err = testService.AdminUpdateCommentStatus(adminActor, 9999, moduledto.AdminCommentStatusRequest{IsActive: boolPtr(true)})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证非管理员调用管理端审核操作时被拒绝。
func TestAdminModeration_RequiresAdmin(t *testing.T) {
	gdb, _ := setupTestDB(t)
	author := testutils.CreateUser(t, gdb, "Author", consts.RoleReader)
	blog := testutils.CreateBlog(t, gdb, author.ID, "Post", "food")
	comment := testutils.CreateComment(t, gdb, author.ID, blog.ID, "hello")
	reader := policy.NewActor(author.ID, consts.RoleReader)

	_, _, err := testService.AdminListBlogs(reader, moduledto.AdminBlogFilter{}, 0, 10)
	assertServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	_, err = testService.AdminUpdateBlogStatus(reader, blog.ID, moduledto.AdminBlogStatusRequest{IsActive: boolPtr(false)})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	_, _, err = testService.AdminListComments(policy.Anonymous(), moduledto.AdminCommentFilter{}, 0, 10)
	assertServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	_, err = testService.AdminUpdateCommentStatus(reader, comment.ID, moduledto.AdminCommentStatusRequest{IsActive: boolPtr(false)})
	assertServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	var stored model.Blog
	require.NoError(t, gdb.First(&stored, blog.ID).Error)
	assert.True(t, stored.IsActive)
}
