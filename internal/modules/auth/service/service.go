package service

import (
	"context"
	"errors"

	"blog-platform-server/internal/model"
	"blog-platform-server/internal/modules/auth/repo"
	platformservice "blog-platform-server/internal/platform/service"

	"gorm.io/gorm"
)

// AvatarFolder 头像存放目录
const AvatarFolder = "avatars"

// SessionIssuer 签发与吊销登录令牌。
type SessionIssuer interface {
	Issue(userID uint, role string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// MediaResolver 将 data URI 上传为图床地址，已是 URL 的引用原样返回。
type MediaResolver interface {
	Resolve(ctx context.Context, folder, ref string) (string, error)
}

// StatusEvictor 用户状态缓存，资料变化后需要驱逐。
type StatusEvictor interface {
	Evict(ctx context.Context, userID uint)
}

type Service struct {
	*platformservice.AppService
	userStore   repo.UserStore
	sessions    SessionIssuer
	media       MediaResolver
	statusCache StatusEvictor
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	sessions SessionIssuer,
	media MediaResolver,
	statusCache StatusEvictor,
) *Service {
	return &Service{
		AppService:  appService,
		userStore:   userStore,
		sessions:    sessions,
		media:       media,
		statusCache: statusCache,
	}
}

// AuthResult 登录或注册成功后返回的令牌与用户。
type AuthResult struct {
	Token string
	User  *model.User
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

func (s *Service) evictStatus(ctx context.Context, userID uint) {
	if s.statusCache != nil {
		s.statusCache.Evict(ctx, userID)
	}
}
