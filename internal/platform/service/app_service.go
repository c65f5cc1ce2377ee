package service

import (
	"errors"
	"strconv"
	"sync"

	"blog-platform-server/internal/model"
	settingsrepo "blog-platform-server/internal/modules/settings/repo"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

// AppService 持有运行时设置的读取与缓存，供各业务模块嵌入使用。
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

// ClearCache 清空运行时设置缓存。
func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

// InitializeSettings 写入缺失的默认设置，并清理已不再使用的配置键。
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return err
	}

	allowed := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		allowed = append(allowed, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(allowed); err != nil {
		return err
	}

	s.ClearCache()
	return nil
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			s.settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("⚠️ 读取运行时设置失败，使用默认值")
		}
		if def, ok := findDefaultSetting(key); ok {
			newSetting := def
			// 并发写入可能导致主键冲突，忽略即可
			_ = s.settingStore.Create(&newSetting)

			s.settingsCache.Store(key, newSetting.Value)
			return newSetting.Value
		}

		s.settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	valStr := s.GetString(key)
	if valStr == "" {
		return false
	}

	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}

func findDefaultSetting(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}
