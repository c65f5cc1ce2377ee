package handler

import (
	"testing"

	modulerepo "blog-platform-server/internal/modules/settings/repo"
	settingsservice "blog-platform-server/internal/modules/settings/service"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	settingStore := modulerepo.NewSettingRepository(gdb)
	testHandler = New(settingsservice.New(platformservice.NewAppService(settingStore), settingStore))
	return gdb
}
