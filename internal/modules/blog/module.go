package blog

import (
	"blog-platform-server/internal/config"
	"blog-platform-server/internal/modules/blog/handler"
	"blog-platform-server/internal/modules/blog/repo"
	"blog-platform-server/internal/modules/blog/service"
	platformservice "blog-platform-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(
	appService *platformservice.AppService,
	blogStore repo.BlogStore,
	commentStore repo.CommentStore,
	media service.MediaResolver,
	imageCfg config.ImageHostConfig,
	contentCfg config.ContentConfig,
) *service.Service {
	return service.New(appService, blogStore, commentStore, media, imageCfg, contentCfg)
}

func New(moduleService *service.Service) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
