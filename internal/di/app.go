package di

import (
	"blog-platform-server/internal/config"
	"blog-platform-server/internal/modules"
	"blog-platform-server/internal/platform/imagehost"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/router"
)

type Application struct {
	Router    *router.Router
	Modules   *modules.AppModules
	Service   *service.AppService
	ImageHost imagehost.Host
}

func NewApplication(r *router.Router, m *modules.AppModules, s *service.AppService, host imagehost.Host) *Application {
	return &Application{
		Router:    r,
		Modules:   m,
		Service:   s,
		ImageHost: host,
	}
}

func provideJWTConfig(cfg *config.Config) config.JWTConfig {
	return cfg.JWT
}

func provideRedisConfig(cfg *config.Config) config.RedisConfig {
	return cfg.Redis
}

func provideImageHostConfig(cfg *config.Config) config.ImageHostConfig {
	return cfg.ImageHost
}
