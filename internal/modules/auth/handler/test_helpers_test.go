package handler

import (
	"testing"

	"blog-platform-server/internal/config"
	authservice "blog-platform-server/internal/modules/auth/service"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	userrepo "blog-platform-server/internal/modules/user/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testHandler  *Handler
	testSessions *session.Manager
)

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	jwtCfg := config.JWTConfig{Secret: "test_secret", ExpirationHours: 2, CookieName: "token", CookieSecure: true}
	testSessions = session.NewManager(jwtCfg, session.NewRevocationList(nil, config.RedisConfig{}))
	svc := authservice.New(appService, userrepo.NewUserRepository(gdb), testSessions, nil, nil)
	svc.ClearCache()
	testHandler = New(svc, NewCookieOptions(jwtCfg))
	return gdb
}
