package auth

import (
	"blog-platform-server/internal/config"
	"blog-platform-server/internal/modules/auth/handler"
	"blog-platform-server/internal/modules/auth/repo"
	"blog-platform-server/internal/modules/auth/service"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	sessions *session.Manager,
	media service.MediaResolver,
	statusCache *session.StatusCache,
) *service.Service {
	return service.New(appService, userStore, sessions, media, statusCache)
}

func New(moduleService *service.Service, jwtCfg config.JWTConfig) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService, handler.NewCookieOptions(jwtCfg)),
	}
}
