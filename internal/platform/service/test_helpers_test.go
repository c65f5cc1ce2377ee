package service

import (
	"testing"

	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	"blog-platform-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}
