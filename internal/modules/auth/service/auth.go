package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/auth/dto"
	"blog-platform-server/internal/policy"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "邮箱或密码错误"

// Register 注册普通读者账号，受运行时设置 allow_register 控制。
func (s *Service) Register(req moduledto.RegisterRequest) (*AuthResult, error) {
	if !s.GetBool(consts.ConfigAllowRegister) {
		return nil, platformservice.NewForbiddenError("当前未开放注册")
	}

	name := strings.TrimSpace(req.Name)
	email := utils.NormalizeEmail(req.Email)
	if ok, msg := utils.ValidateName(name); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateStruct(req); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	taken, err := s.userStore.EmailExists(email, nil)
	if err != nil {
		return nil, platformservice.WrapInternalError("注册失败", err)
	}
	if taken {
		return nil, platformservice.NewConflictError("该邮箱已被注册")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, platformservice.WrapInternalError("注册失败", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     consts.RoleReader,
		Bio:      strings.TrimSpace(req.Bio),
		IsActive: true,
	}
	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, platformservice.NewConflictError("该邮箱已被注册")
		}
		return nil, platformservice.WrapInternalError("注册失败", err)
	}

	log.Info().Uint("user_id", user.ID).Msg("新用户注册")
	return s.issue(user)
}

// Login 邮箱密码登录。
func (s *Service) Login(req moduledto.LoginRequest) (*AuthResult, error) {
	user, err := s.authenticate(req)
	if err != nil {
		return nil, err
	}
	return s.completeLogin(user)
}

// AdminLogin 管理后台登录，在普通登录的基础上要求管理员角色。
func (s *Service) AdminLogin(req moduledto.LoginRequest) (*AuthResult, error) {
	user, err := s.authenticate(req)
	if err != nil {
		return nil, err
	}
	if !policy.NewActor(user.ID, user.Role).IsAdmin() {
		return nil, platformservice.NewForbiddenError("需要管理员权限")
	}
	return s.completeLogin(user)
}

// Logout 吊销当前令牌直至其过期。
func (s *Service) Logout(ctx context.Context, token string) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return platformservice.WrapInternalError("退出登录失败", err)
	}
	return nil
}

func (s *Service) authenticate(req moduledto.LoginRequest) (*model.User, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, platformservice.NewValidationError("请输入邮箱和密码")
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
		}
		return nil, platformservice.WrapInternalError("登录失败", err)
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if !user.IsActive {
		return nil, platformservice.NewUnauthorizedError("账号已停用，请联系管理员")
	}
	return user, nil
}

func (s *Service) completeLogin(user *model.User) (*AuthResult, error) {
	now := time.Now()
	if err := s.userStore.UpdateLastLogin(user.ID, now); err != nil {
		return nil, platformservice.WrapInternalError("登录失败", err)
	}
	user.LastLogin = &now
	return s.issue(user)
}

func (s *Service) issue(user *model.User) (*AuthResult, error) {
	token, err := s.sessions.Issue(user.ID, user.Role)
	if err != nil {
		return nil, platformservice.WrapInternalError("生成令牌失败", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
