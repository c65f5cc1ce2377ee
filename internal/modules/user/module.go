package user

import (
	"blog-platform-server/internal/modules/user/handler"
	"blog-platform-server/internal/modules/user/repo"
	"blog-platform-server/internal/modules/user/service"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, userStore repo.UserStore, statusCache *session.StatusCache) *service.Service {
	return service.New(appService, userStore, statusCache)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
