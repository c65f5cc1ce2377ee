package model

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	BlogID    uint      `json:"blogId" gorm:"not null;index:idx_comment_blog_created,priority:1"`
	Text      string    `json:"text" gorm:"size:500;not null"`
	IsActive  bool      `json:"isActive" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_comment_blog_created,priority:2"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Blog Blog `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE;"`
}
