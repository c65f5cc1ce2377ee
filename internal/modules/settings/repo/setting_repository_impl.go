package repo

import (
	"fmt"

	"blog-platform-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// key 与 desc 在 MySQL 中是保留字，条件与冲突列统一经由 clause.Column 交给 gorm 引用。
var (
	settingKeyColumn   = clause.Column{Name: "key"}
	settingMetaColumns = []string{"desc", "category", "sensitive"}
)

type SettingRepository struct {
	db *gorm.DB
}

// InitializeDefaults 插入缺失的默认设置；已存在的行保留当前值，只刷新描述、分类与敏感标记。
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	if len(defaults) == 0 {
		return nil
	}
	rows := make([]model.Setting, len(defaults))
	copy(rows, defaults)

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{settingKeyColumn},
		DoUpdates: clause.AssignmentColumns(settingMetaColumns),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("写入默认设置失败: %w", err)
	}
	return nil
}

// DeleteNotInKeys 清理已废弃的设置项。
func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	if len(allowedKeys) == 0 {
		return nil
	}
	values := make([]interface{}, len(allowedKeys))
	for i, key := range allowedKeys {
		values[i] = key
	}
	return r.db.
		Where(clause.Not(clause.IN{Column: settingKeyColumn, Values: values})).
		Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(&model.Setting{Key: key}).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order(clause.OrderByColumn{Column: settingKeyColumn}).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings 在一个事务内写入全部设置值。
// 敏感设置若提交的是脱敏占位值，说明前端没有修改它，保留原值。
func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sensitiveKeys []string
		if err := tx.Model(&model.Setting{}).
			Where(&model.Setting{Sensitive: true}).
			Pluck("key", &sensitiveKeys).Error; err != nil {
			return err
		}
		sensitive := make(map[string]bool, len(sensitiveKeys))
		for _, key := range sensitiveKeys {
			sensitive[key] = true
		}

		for _, item := range items {
			if item.Value == maskedValue && sensitive[item.Key] {
				continue
			}
			setting := model.Setting{Key: item.Key, Value: item.Value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{settingKeyColumn},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&setting).Error; err != nil {
				return fmt.Errorf("更新设置 %q 失败: %w", item.Key, err)
			}
		}
		return nil
	})
}
