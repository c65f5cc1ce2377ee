package service

import (
	"strconv"
	"strings"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/settings/dto"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"
	platformservice "blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/policy"
)

type valueKind int

const (
	kindText valueKind = iota
	kindBool
	kindPositiveInt
	kindPositiveFloat
)

var settingKinds = map[string]valueKind{
	consts.ConfigAllowRegister:        kindBool,
	consts.ConfigRateLimitEnabled:     kindBool,
	consts.ConfigRateLimitAuthRPS:     kindPositiveFloat,
	consts.ConfigRateLimitUploadRPS:   kindPositiveFloat,
	consts.ConfigRateLimitWriteRPS:    kindPositiveFloat,
	consts.ConfigRateLimitAuthBurst:   kindPositiveInt,
	consts.ConfigRateLimitUploadBurst: kindPositiveInt,
	consts.ConfigRateLimitWriteBurst:  kindPositiveInt,
	consts.ConfigMaxRequestBodySize:   kindPositiveInt,
	consts.ConfigMaxUploadSize:        kindPositiveInt,
}

// AdminListSettings 获取全部系统设置。
func (s *Service) AdminListSettings(actor policy.Actor) ([]model.Setting, error) {
	if !policy.CanAccessAdminArea(actor) {
		return nil, platformservice.NewForbiddenError("需要管理员权限")
	}

	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.WrapInternalError("获取配置失败", err)
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminUpdateSettings 批量更新系统设置，全部校验通过后才写入，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(actor policy.Actor, items []moduledto.UpdateSettingRequest) error {
	if !policy.CanAccessAdminArea(actor) {
		return platformservice.NewForbiddenError("需要管理员权限")
	}
	if len(items) == 0 {
		return platformservice.NewValidationError("至少需要提交一项配置")
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		key := strings.TrimSpace(item.Key)
		value := strings.TrimSpace(item.Value)
		if err := validateSettingUpdate(key, value); err != nil {
			return err
		}
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{Key: key, Value: value})
	}

	if err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue); err != nil {
		return platformservice.WrapInternalError("更新失败", err)
	}

	s.ClearCache()
	return nil
}

// WebInfo 返回前台展示用的公开配置。
func (s *Service) WebInfo() moduledto.WebInfoResponse {
	return moduledto.WebInfoResponse{
		SiteName:        s.GetString(consts.ConfigSiteName),
		SiteDescription: s.GetString(consts.ConfigSiteDescription),
		AllowRegister:   s.GetBool(consts.ConfigAllowRegister),
	}
}

func validateSettingUpdate(key, value string) error {
	if key == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}
	if _, ok := defaultSettingOrderByKey[key]; !ok {
		return platformservice.NewValidationError("未知的配置项: " + key)
	}
	switch settingKinds[key] {
	case kindBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(key + " 必须为 true 或 false")
		}
	case kindPositiveInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return platformservice.NewValidationError(key + " 必须为正整数")
		}
	case kindPositiveFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return platformservice.NewValidationError(key + " 必须为正数")
		}
	default:
		if key == consts.ConfigSiteName && value == "" {
			return platformservice.NewValidationError("网站名称不能为空")
		}
	}
	return nil
}
