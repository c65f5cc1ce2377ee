package service

import (
	"context"
	"strings"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/user/dto"
	"blog-platform-server/internal/modules/user/repo"
	"blog-platform-server/internal/policy"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/utils"

	"github.com/rs/zerolog/log"
)

func errAdminRequired() error {
	return platformservice.NewForbiddenError("需要管理员权限")
}

// AdminListUsers 按关键字、角色与启用状态分页查询用户。
func (s *Service) AdminListUsers(actor policy.Actor, req moduledto.AdminUserListRequest) ([]model.User, int64, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, 0, errAdminRequired()
	}
	filter := repo.AdminUserFilter{
		Search: req.Search,
		Offset: (req.Page - 1) * req.Limit,
		Limit:  req.Limit,
	}
	if consts.IsValidRole(req.Role) {
		filter.Role = req.Role
	}
	switch req.Status {
	case "active":
		active := true
		filter.Active = &active
	case "inactive":
		inactive := false
		filter.Active = &inactive
	}

	users, total, err := s.userStore.AdminListUsers(filter)
	if err != nil {
		return nil, 0, platformservice.WrapInternalError("获取用户列表失败", err)
	}
	return users, total, nil
}

// AdminGetUser 返回用户资料、其有效博客的汇总统计和最近发布的博客。
func (s *Service) AdminGetUser(actor policy.Actor, userID uint) (*moduledto.AdminUserDetail, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, errAdminRequired()
	}
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	agg, err := s.userStore.AuthorBlogAggregate(userID)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取用户统计失败", err)
	}
	blogs, err := s.userStore.RecentBlogsByAuthor(userID, consts.DashboardRecentLimit)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取用户博客失败", err)
	}

	recent := make([]moduledto.RecentBlog, 0, len(blogs))
	for _, b := range blogs {
		recent = append(recent, moduledto.RecentBlog{
			ID:        b.ID,
			Title:     b.Title,
			Category:  b.Category,
			Status:    b.Status,
			Views:     b.Views,
			Likes:     b.LikeCount,
			CreatedAt: b.CreatedAt,
		})
	}

	return &moduledto.AdminUserDetail{
		User: user,
		Stats: moduledto.AuthorStats{
			TotalBlogs: agg.TotalBlogs,
			TotalViews: agg.TotalViews,
			TotalLikes: agg.TotalLikes,
		},
		RecentBlogs: recent,
	}, nil
}

// AdminUpdateUser 管理员修改用户资料、角色与启用状态，不涉及密码。
func (s *Service) AdminUpdateUser(ctx context.Context, actor policy.Actor, userID uint, req moduledto.AdminUpdateUserRequest) (*model.User, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, errAdminRequired()
	}
	if req.Email != nil {
		normalized := utils.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if ok, msg := utils.ValidateStruct(req); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	if _, err := s.getUser(userID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if ok, msg := utils.ValidateName(*req.Name); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		if ok, msg := utils.ValidateEmail(*req.Email); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		taken, err := s.userStore.EmailExists(*req.Email, &userID)
		if err != nil {
			return nil, platformservice.WrapInternalError("更新用户失败", err)
		}
		if taken {
			return nil, platformservice.NewConflictError("该邮箱已被使用")
		}
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	if len(updates) > 0 {
		if err := s.userStore.UpdateByID(userID, updates); err != nil {
			return nil, platformservice.WrapInternalError("更新用户失败", err)
		}
		s.evictStatus(ctx, userID)
	}

	return s.getUser(userID)
}

// DeactivateUser 停用用户，并级联停用其博客与评论。用户记录本身永不物理删除。
func (s *Service) DeactivateUser(ctx context.Context, actor policy.Actor, targetID uint) error {
	if !policy.CanAccessAdminArea(actor) {
		return errAdminRequired()
	}
	if !policy.CanDeleteSelf(actor, targetID) {
		return platformservice.NewSelfDeleteError("不能删除自己的账号")
	}
	if _, err := s.getUser(targetID); err != nil {
		return err
	}

	if err := s.userStore.DeactivateWithCascade(targetID); err != nil {
		return platformservice.WrapInternalError("删除用户失败", err)
	}
	s.evictStatus(ctx, targetID)

	log.Info().Uint("admin_id", actor.ID).Uint("user_id", targetID).Msg("用户已停用，博客与评论已级联停用")
	return nil
}
