package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/modules/blog/repo"
	"blog-platform-server/internal/policy"
	platformservice "blog-platform-server/internal/platform/service"

	"gorm.io/gorm"
)

// ViewBlog 返回博客详情并将浏览量加一。登录用户额外返回是否已点赞。
func (s *Service) ViewBlog(viewer policy.Actor, blogID uint) (*moduledto.BlogDetail, error) {
	if _, err := s.getActiveBlog(blogID); err != nil {
		return nil, err
	}
	if err := s.blogStore.IncrementViews(blogID); err != nil {
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}

	blog, err := s.blogStore.FindByID(blogID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}
	comments, err := s.commentStore.ListActiveByBlog(blogID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取评论失败", err)
	}

	detail := toBlogDetail(blog, comments)
	if viewer.Authenticated {
		liked, err := s.blogStore.IsLikedBy(blogID, viewer.ID)
		if err != nil {
			return nil, platformservice.WrapInternalError("获取点赞状态失败", err)
		}
		detail.IsLiked = &liked
	}
	return detail, nil
}

// ToggleLike 切换当前用户对博客的点赞状态。
func (s *Service) ToggleLike(actor policy.Actor, blogID uint) (*moduledto.LikeResult, error) {
	if !actor.Authenticated {
		return nil, platformservice.NewUnauthorizedError("请先登录")
	}
	if _, err := s.getActiveBlog(blogID); err != nil {
		return nil, err
	}

	state, err := s.blogStore.ToggleLike(blogID, actor.ID, s.likeOptions)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrLikeConflict):
			return nil, platformservice.NewConflictError("点赞操作冲突，请稍后重试")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, platformservice.NewNotFoundError("博客不存在")
		}
		return nil, platformservice.WrapInternalError("点赞失败", err)
	}
	return &moduledto.LikeResult{Likes: state.Likes, IsLiked: state.Liked}, nil
}

// AddComment 为博客添加评论，评论内容去除首尾空白后保存。
func (s *Service) AddComment(_ context.Context, actor policy.Actor, blogID uint, req moduledto.CommentRequest) (*moduledto.CommentItem, error) {
	if !actor.Authenticated {
		return nil, platformservice.NewUnauthorizedError("请先登录")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, platformservice.NewValidationError("评论内容不能为空")
	}
	if utf8.RuneCountInString(text) > consts.CommentTextMaxLength {
		return nil, platformservice.NewValidationError(fmt.Sprintf("评论内容不能超过 %d 个字符", consts.CommentTextMaxLength))
	}

	if _, err := s.getActiveBlog(blogID); err != nil {
		return nil, err
	}

	comment := &model.Comment{UserID: actor.ID, BlogID: blogID, Text: text, IsActive: true}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, platformservice.WrapInternalError("添加评论失败", err)
	}

	created, err := s.commentStore.FindByID(comment.ID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取评论失败", err)
	}
	item := toCommentItem(created)
	return &item, nil
}

// DeleteComment 软删除评论，评论作者本人或管理员可操作。
// 评论不属于路径中的博客时按不存在处理。
func (s *Service) DeleteComment(actor policy.Actor, blogID, commentID uint) error {
	comment, err := s.commentStore.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("评论不存在")
		}
		return platformservice.WrapInternalError("获取评论失败", err)
	}
	if comment.BlogID != blogID {
		return platformservice.NewNotFoundError("评论不存在")
	}
	if !comment.IsActive {
		return platformservice.NewAlreadyDeletedError("评论已被删除")
	}
	if !policy.CanDeleteComment(actor, policy.CommentRef{AuthorID: comment.UserID}) {
		return platformservice.NewForbiddenError("无权删除该评论")
	}

	if err := s.commentStore.SetActive(commentID, false); err != nil {
		return platformservice.WrapInternalError("删除评论失败", err)
	}
	return nil
}
