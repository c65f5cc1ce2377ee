package model

type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:64"`
	Value     string `json:"value"`
	Desc      string `json:"desc"`
	Category  string `json:"category" gorm:"size:32"`
	Sensitive bool   `json:"sensitive" gorm:"not null"`
}

// AllModels 返回需要自动迁移的全部模型。
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Blog{},
		&BlogTag{},
		&BlogLike{},
		&Comment{},
		&Setting{},
	}
}
