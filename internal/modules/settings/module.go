package settings

import (
	"blog-platform-server/internal/modules/settings/handler"
	"blog-platform-server/internal/modules/settings/repo"
	"blog-platform-server/internal/modules/settings/service"
	platformservice "blog-platform-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, settingStore repo.SettingStore) *service.Service {
	return service.New(appService, settingStore)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
