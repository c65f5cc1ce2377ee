package service

import (
	"testing"

	"blog-platform-server/internal/modules/admin/repo"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testService = New(appService, repo.NewStatsRepository(gdb))
	return gdb
}
