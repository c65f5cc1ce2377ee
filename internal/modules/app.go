package modules

import (
	"blog-platform-server/internal/config"
	"blog-platform-server/internal/modules/admin"
	adminrepo "blog-platform-server/internal/modules/admin/repo"
	"blog-platform-server/internal/modules/auth"
	"blog-platform-server/internal/modules/blog"
	blogrepo "blog-platform-server/internal/modules/blog/repo"
	"blog-platform-server/internal/modules/media"
	"blog-platform-server/internal/modules/settings"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	"blog-platform-server/internal/modules/user"
	userrepo "blog-platform-server/internal/modules/user/repo"
	"blog-platform-server/internal/platform/imagehost"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
)

type AppModules struct {
	Auth     *auth.Module
	User     *user.Module
	Blog     *blog.Module
	Media    *media.Module
	Settings *settings.Module
	Admin    *admin.Module
}

func New(
	cfg *config.Config,
	appService *platformservice.AppService,
	userStore userrepo.UserStore,
	blogStore blogrepo.BlogStore,
	commentStore blogrepo.CommentStore,
	settingStore settingsrepo.SettingStore,
	statsStore adminrepo.StatsStore,
	sessions *session.Manager,
	statusCache *session.StatusCache,
	host imagehost.Host,
) *AppModules {
	mediaModule := media.New(media.NewService(appService, host))
	userModule := user.New(user.NewService(appService, userStore, statusCache))
	authModule := auth.New(
		auth.NewService(appService, userStore, sessions, mediaModule.Service, statusCache),
		cfg.JWT,
	)
	blogModule := blog.New(
		blog.NewService(appService, blogStore, commentStore, mediaModule.Service, cfg.ImageHost, cfg.Content),
	)

	return &AppModules{
		Auth:     authModule,
		User:     userModule,
		Blog:     blogModule,
		Media:    mediaModule,
		Settings: settings.New(settings.NewService(appService, settingStore)),
		Admin:    admin.New(admin.NewService(appService, statsStore)),
	}
}
