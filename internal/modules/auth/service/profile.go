package service

import (
	"context"
	"strings"

	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/auth/dto"
	"blog-platform-server/internal/policy"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/utils"
)

// Me 返回当前登录用户。
func (s *Service) Me(actor policy.Actor) (*model.User, error) {
	if !actor.Authenticated {
		return nil, platformservice.NewUnauthorizedError("请先登录")
	}
	return s.getUser(actor.ID)
}

// UpdateProfile 修改昵称、邮箱或简介，邮箱需在排除自身后保持唯一。
func (s *Service) UpdateProfile(ctx context.Context, actor policy.Actor, req moduledto.UpdateProfileRequest) (*model.User, error) {
	if !actor.Authenticated {
		return nil, platformservice.NewUnauthorizedError("请先登录")
	}
	if ok, msg := utils.ValidateStruct(req); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if _, err := s.getUser(actor.ID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if ok, msg := utils.ValidateName(name); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		updates["name"] = name
	}
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if ok, msg := utils.ValidateEmail(email); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		taken, err := s.userStore.EmailExists(email, &actor.ID)
		if err != nil {
			return nil, platformservice.WrapInternalError("更新资料失败", err)
		}
		if taken {
			return nil, platformservice.NewConflictError("该邮箱已被使用")
		}
		updates["email"] = email
	}
	if req.Bio != nil {
		updates["bio"] = strings.TrimSpace(*req.Bio)
	}

	if len(updates) > 0 {
		if err := s.userStore.UpdateByID(actor.ID, updates); err != nil {
			return nil, platformservice.WrapInternalError("更新资料失败", err)
		}
		s.evictStatus(ctx, actor.ID)
	}
	return s.getUser(actor.ID)
}

// ChangePassword 校验当前密码后设置新密码。
func (s *Service) ChangePassword(actor policy.Actor, req moduledto.ChangePasswordRequest) error {
	if !actor.Authenticated {
		return platformservice.NewUnauthorizedError("请先登录")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return platformservice.NewValidationError("请输入当前密码和新密码")
	}
	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		return platformservice.NewValidationError(msg)
	}

	user, err := s.getUser(actor.ID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		return platformservice.NewValidationError("当前密码不正确")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return platformservice.WrapInternalError("修改密码失败", err)
	}
	if err := s.userStore.UpdateByID(actor.ID, map[string]interface{}{"password": hashed}); err != nil {
		return platformservice.WrapInternalError("修改密码失败", err)
	}
	return nil
}

// UploadAvatar 通过图床上传头像，也接受已托管的图片地址。
func (s *Service) UploadAvatar(ctx context.Context, actor policy.Actor, req moduledto.UploadAvatarRequest) (*model.User, error) {
	if !actor.Authenticated {
		return nil, platformservice.NewUnauthorizedError("请先登录")
	}
	ref := strings.TrimSpace(req.Avatar)
	if ref == "" {
		return nil, platformservice.NewValidationError("请提供头像图片")
	}
	if _, err := s.getUser(actor.ID); err != nil {
		return nil, err
	}

	url := ref
	if s.media != nil {
		resolved, err := s.media.Resolve(ctx, AvatarFolder, ref)
		if err != nil {
			return nil, err
		}
		url = resolved
	}

	if err := s.userStore.UpdateByID(actor.ID, map[string]interface{}{"avatar": url}); err != nil {
		return nil, platformservice.WrapInternalError("更新头像失败", err)
	}
	return s.getUser(actor.ID)
}
