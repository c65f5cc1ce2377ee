package model

import (
	"time"
)

type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:50;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;size:255;not null"` // 统一小写存储
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"size:20;not null;index"`
	Bio       string     `json:"bio" gorm:"size:500"`
	Avatar    string     `json:"avatar"`
	IsActive  bool       `json:"isActive" gorm:"not null;index"` // 停用即软删除，永不物理删除
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Blogs     []Blog     `json:"-" gorm:"foreignKey:AuthorID"`
}
