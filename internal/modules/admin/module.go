package admin

import (
	"blog-platform-server/internal/modules/admin/handler"
	"blog-platform-server/internal/modules/admin/repo"
	"blog-platform-server/internal/modules/admin/service"
	platformservice "blog-platform-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, statsStore repo.StatsStore) *service.Service {
	return service.New(appService, statsStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
