package service

import (
	"testing"

	"blog-platform-server/internal/config"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	userrepo "blog-platform-server/internal/modules/user/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"
	"blog-platform-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService  *Service
	testSessions *session.Manager
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	revoked := session.NewRevocationList(nil, config.RedisConfig{})
	testSessions = session.NewManager(config.JWTConfig{Secret: "test_secret", ExpirationHours: 1}, revoked)
	testService = New(
		appService,
		userrepo.NewUserRepository(gdb),
		testSessions,
		nil,
		session.NewStatusCache(nil, config.RedisConfig{}),
	)
	testService.ClearCache()
	return gdb
}

func assertServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
}
