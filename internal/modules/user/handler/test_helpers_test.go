package handler

import (
	"testing"

	"blog-platform-server/internal/config"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	"blog-platform-server/internal/modules/user/repo"
	userservice "blog-platform-server/internal/modules/user/service"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	svc := userservice.New(appService, repo.NewUserRepository(gdb), session.NewStatusCache(nil, config.RedisConfig{}))
	testHandler = New(svc)
	return gdb
}
