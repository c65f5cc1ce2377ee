//go:build wireinject
// +build wireinject

package di

import (
	"blog-platform-server/internal/config"
	"blog-platform-server/internal/middleware"
	"blog-platform-server/internal/modules"
	adminrepo "blog-platform-server/internal/modules/admin/repo"
	blogrepo "blog-platform-server/internal/modules/blog/repo"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	userrepo "blog-platform-server/internal/modules/user/repo"
	"blog-platform-server/internal/platform/imagehost"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/router"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitializeApplication(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) (*Application, error) {
	wire.Build(
		provideJWTConfig,
		provideRedisConfig,
		provideImageHostConfig,
		userrepo.NewUserRepository,
		blogrepo.NewBlogRepository,
		blogrepo.NewCommentRepository,
		settingsrepo.NewSettingRepository,
		adminrepo.NewStatsRepository,
		service.NewAppService,
		session.NewRevocationList,
		session.NewManager,
		session.NewStatusCache,
		imagehost.New,
		middleware.NewRateLimiter,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
