package service

import (
	"context"
	"strings"
	"testing"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/modules/blog/repo"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/testutils"

	"gorm.io/gorm"
)

const testDefaultCover = "/static/default-cover.jpg"

var testService *Service

// fakeMedia 将 data URI 映射为固定地址，便于断言。
type fakeMedia struct {
	uploads []string
	err     error
}

func (m *fakeMedia) Resolve(_ context.Context, folder, ref string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if !strings.HasPrefix(ref, "data:") {
		return ref, nil
	}
	m.uploads = append(m.uploads, folder)
	return "/images/" + folder + "/uploaded.png", nil
}

func setupTestDB(t *testing.T) (*gorm.DB, *fakeMedia) {
	return setupTestDBWithContent(t, config.ContentConfig{MaxRetries: 3})
}

func setupTestDBWithContent(t *testing.T, contentCfg config.ContentConfig) (*gorm.DB, *fakeMedia) {
	gdb := testutils.SetupDB(t)
	media := &fakeMedia{}
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	testService = New(
		appService,
		repo.NewBlogRepository(gdb),
		repo.NewCommentRepository(gdb),
		media,
		config.ImageHostConfig{DefaultCover: testDefaultCover},
		contentCfg,
	)
	testService.ClearCache()
	return gdb, media
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

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
