package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/policy"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/utils"

	"github.com/rs/zerolog/log"
)

// CreateBlog 创建博客，作者固定为当前用户。
func (s *Service) CreateBlog(ctx context.Context, actor policy.Actor, req moduledto.CreateBlogRequest) (*moduledto.BlogDetail, error) {
	if !actor.Authenticated {
		return nil, platformservice.NewUnauthorizedError("请先登录")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Excerpt = strings.TrimSpace(req.Excerpt)
	if ok, msg := utils.ValidateStruct(req); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := validateTags(req.Tags); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	image, err := s.resolveImage(ctx, CoverFolder, strings.TrimSpace(req.Image))
	if err != nil {
		return nil, err
	}
	if image == "" {
		image = s.defaultCover
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = DeriveExcerpt(req.Content)
	}
	status := req.Status
	if status == "" {
		status = consts.BlogStatusPublished
	}

	blog := &model.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  excerpt,
		Category: req.Category,
		Image:    image,
		AuthorID: actor.ID,
		Status:   status,
		IsActive: true,
		ReadTime: DeriveReadTime(req.Content),
	}
	for i, tag := range req.Tags {
		blog.Tags = append(blog.Tags, model.BlogTag{Position: i, Value: tag})
	}

	if err := s.blogStore.Create(blog); err != nil {
		return nil, platformservice.WrapInternalError("创建博客失败", err)
	}

	created, err := s.blogStore.FindByID(blog.ID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}
	log.Info().Uint("blog_id", blog.ID).Uint("author_id", actor.ID).Msg("博客已创建")
	return toBlogDetail(created, nil), nil
}

// UpdateBlog 部分更新博客，仅作者本人或管理员可操作。
func (s *Service) UpdateBlog(ctx context.Context, actor policy.Actor, blogID uint, req moduledto.UpdateBlogRequest) (*moduledto.BlogDetail, error) {
	blog, err := s.getActiveBlog(blogID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyBlog(actor, policy.BlogRef{AuthorID: blog.AuthorID}) {
		return nil, platformservice.NewForbiddenError("无权修改该博客")
	}

	// 空字符串视为未提供
	req.Title = trimmedOrNil(req.Title)
	req.Content = nonEmptyOrNil(req.Content)
	req.Excerpt = trimmedOrNil(req.Excerpt)
	req.Category = nonEmptyOrNil(req.Category)
	req.Status = nonEmptyOrNil(req.Status)
	req.Image = trimmedOrNil(req.Image)
	if ok, msg := utils.ValidateStruct(req); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	var tags []string
	if req.Tags != nil {
		tags = *req.Tags
		if ok, msg := validateTags(tags); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["read_time"] = DeriveReadTime(*req.Content)
		if req.Excerpt == nil {
			updates["excerpt"] = DeriveExcerpt(*req.Content)
		}
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Image != nil {
		image, err := s.resolveImage(ctx, CoverFolder, *req.Image)
		if err != nil {
			return nil, err
		}
		updates["image"] = image
	}

	if err := s.blogStore.Update(blogID, updates, tags, req.Tags != nil); err != nil {
		return nil, platformservice.WrapInternalError("更新博客失败", err)
	}

	updated, err := s.blogStore.FindByID(blogID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}
	return toBlogDetail(updated, nil), nil
}

// DeleteBlog 软删除博客，并在同一事务中停用其全部评论。
func (s *Service) DeleteBlog(actor policy.Actor, blogID uint) error {
	blog, err := s.getActiveBlog(blogID)
	if err != nil {
		return err
	}
	if !policy.CanModifyBlog(actor, policy.BlogRef{AuthorID: blog.AuthorID}) {
		return platformservice.NewForbiddenError("无权删除该博客")
	}

	if err := s.blogStore.DeactivateWithComments(blogID); err != nil {
		return platformservice.WrapInternalError("删除博客失败", err)
	}
	log.Info().Uint("blog_id", blogID).Uint("actor_id", actor.ID).Msg("博客已删除，评论已级联停用")
	return nil
}

func validateTags(tags []string) (bool, string) {
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > consts.BlogTagMaxLength {
			return false, fmt.Sprintf("标签长度不能超过 %d 个字符", consts.BlogTagMaxLength)
		}
	}
	return true, ""
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func nonEmptyOrNil(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
