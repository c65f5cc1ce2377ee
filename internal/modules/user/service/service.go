package service

import (
	"context"
	"errors"

	"blog-platform-server/internal/model"
	"blog-platform-server/internal/modules/user/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"

	"gorm.io/gorm"
)

// StatusEvictor 用户状态缓存，停用或修改角色后需要立即驱逐。
type StatusEvictor interface {
	Evict(ctx context.Context, userID uint)
}

type Service struct {
	*platformservice.AppService
	userStore   repo.UserStore
	statusCache StatusEvictor
}

func New(appService *platformservice.AppService, userStore repo.UserStore, statusCache StatusEvictor) *Service {
	return &Service{
		AppService:  appService,
		userStore:   userStore,
		statusCache: statusCache,
	}
}

// FindStatusByID 供鉴权中间件读取用户实时状态。
func (s *Service) FindStatusByID(userID uint) (session.UserStatus, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		return session.UserStatus{}, err
	}
	return session.UserStatus{Active: user.IsActive, Role: user.Role}, nil
}

func (s *Service) evictStatus(ctx context.Context, userID uint) {
	if s.statusCache != nil {
		s.statusCache.Evict(ctx, userID)
	}
}

func (s *Service) getUser(userID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("用户不存在")
		}
		return nil, platformservice.WrapInternalError("获取用户失败", err)
	}
	return user, nil
}
