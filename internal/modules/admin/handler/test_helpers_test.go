package handler

import (
	"testing"

	"blog-platform-server/internal/modules/admin/repo"
	adminservice "blog-platform-server/internal/modules/admin/service"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testHandler = New(adminservice.New(appService, repo.NewStatsRepository(gdb)))
	return gdb
}
