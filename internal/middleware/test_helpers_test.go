package middleware

import (
	"testing"

	"blog-platform-server/internal/config"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}

func newTestSessions() *session.Manager {
	return session.NewManager(
		config.JWTConfig{Secret: "middleware_test_secret", ExpirationHours: 1},
		session.NewRevocationList(nil, config.RedisConfig{}),
	)
}

type fakeStatusLoader struct {
	statuses map[uint]session.UserStatus
	calls    int
}

func (f *fakeStatusLoader) FindStatusByID(userID uint) (session.UserStatus, error) {
	f.calls++
	status, ok := f.statuses[userID]
	if !ok {
		return session.UserStatus{}, gorm.ErrRecordNotFound
	}
	return status, nil
}
