package repo

import "blog-platform-server/internal/model"

// UpdateSettingItem 一次批量更新中的单个设置值。
type UpdateSettingItem struct {
	Key   string
	Value string
}

// SettingStore 运行时设置表的存储能力，AppService 与设置模块共用。
type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	DeleteNotInKeys(allowedKeys []string) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	UpdateSettings(items []UpdateSettingItem, maskedValue string) error
}
