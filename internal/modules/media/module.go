package media

import (
	"blog-platform-server/internal/modules/media/handler"
	"blog-platform-server/internal/modules/media/service"
	"blog-platform-server/internal/platform/imagehost"
	platformservice "blog-platform-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, host imagehost.Host) *service.Service {
	return service.New(appService, host)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
