package service

import (
	"errors"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/modules/blog/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/policy"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func errAdminRequired() error {
	return platformservice.NewForbiddenError("需要管理员权限")
}

// AdminListBlogs 管理端博客列表，不附加默认的有效或已发布条件。
func (s *Service) AdminListBlogs(actor policy.Actor, filter moduledto.AdminBlogFilter, offset, limit int) ([]moduledto.BlogItem, int64, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, 0, errAdminRequired()
	}
	query := repo.BlogQuery{
		Search:   filter.Search,
		AuthorID: filter.AuthorID,
		Offset:   offset,
		Limit:    limit,
	}
	if consts.IsValidCategory(filter.Category) {
		query.Category = filter.Category
	}
	switch {
	case filter.Status == "active":
		active := true
		query.Active = &active
	case filter.Status == "inactive":
		inactive := false
		query.Active = &inactive
	case consts.IsValidBlogStatus(filter.Status):
		query.Status = filter.Status
	}
	return s.listBlogs(query)
}

// AdminUpdateBlogStatus 管理员直接修改博客状态或启用标记，不校验作者归属。
func (s *Service) AdminUpdateBlogStatus(actor policy.Actor, blogID uint, req moduledto.AdminBlogStatusRequest) (*moduledto.BlogItem, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, errAdminRequired()
	}
	if req.Status == nil && req.IsActive == nil {
		return nil, platformservice.NewValidationError("请提供 status 或 isActive")
	}
	if req.Status != nil && !consts.IsValidBlogStatus(*req.Status) {
		return nil, platformservice.NewValidationError("status 取值无效")
	}

	if _, err := s.blogStore.FindByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("博客不存在")
		}
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.blogStore.Update(blogID, updates, nil, false); err != nil {
		return nil, platformservice.WrapInternalError("更新博客状态失败", err)
	}

	blog, err := s.blogStore.FindByID(blogID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}
	items, err := s.toBlogItems([]model.Blog{*blog})
	if err != nil {
		return nil, err
	}
	log.Info().Uint("blog_id", blogID).Interface("updates", updates).Msg("管理员已更新博客状态")
	return &items[0], nil
}

// AdminListComments 管理端评论列表，附带评论者邮箱与所属博客标题。
func (s *Service) AdminListComments(actor policy.Actor, filter moduledto.AdminCommentFilter, offset, limit int) ([]moduledto.AdminCommentItem, int64, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, 0, errAdminRequired()
	}
	query := repo.CommentQuery{BlogID: filter.BlogID, Offset: offset, Limit: limit}
	switch filter.Status {
	case "active":
		active := true
		query.Active = &active
	case "inactive":
		inactive := false
		query.Active = &inactive
	}

	comments, total, err := s.commentStore.AdminList(query)
	if err != nil {
		return nil, 0, platformservice.WrapInternalError("获取评论列表失败", err)
	}
	items := make([]moduledto.AdminCommentItem, 0, len(comments))
	for i := range comments {
		items = append(items, toAdminCommentItem(&comments[i]))
	}
	return items, total, nil
}

// AdminUpdateCommentStatus 管理员直接切换评论启用状态。
func (s *Service) AdminUpdateCommentStatus(actor policy.Actor, commentID uint, req moduledto.AdminCommentStatusRequest) (*moduledto.AdminCommentItem, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, errAdminRequired()
	}
	if req.IsActive == nil {
		return nil, platformservice.NewValidationError("isActive 不能为空")
	}
	if _, err := s.commentStore.FindByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("评论不存在")
		}
		return nil, platformservice.WrapInternalError("获取评论失败", err)
	}

	if err := s.commentStore.SetActive(commentID, *req.IsActive); err != nil {
		return nil, platformservice.WrapInternalError("更新评论状态失败", err)
	}

	comment, err := s.commentStore.FindByID(commentID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取评论失败", err)
	}
	item := toAdminCommentItem(comment)
	return &item, nil
}
