package model

import "time"

type Blog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" gorm:"size:300"`
	Category  string    `json:"category" gorm:"size:32;not null;index"`
	Image     string    `json:"image"`
	AuthorID  uint      `json:"authorId" gorm:"not null;index"`
	Views     int64     `json:"views" gorm:"not null;default:0"`
	LikeCount int64     `json:"likeCount" gorm:"not null;default:0"`
	Version   int64     `json:"-" gorm:"not null;default:0"` // 点赞乐观锁版本号
	Status    string    `json:"status" gorm:"size:20;not null;index"`
	IsActive  bool      `json:"isActive" gorm:"not null;index"`
	ReadTime  int       `json:"readTime" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author User      `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE;"`
	Tags   []BlogTag `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:OnDelete:CASCADE;"`
}

// BlogTag 博客标签，Position 保持用户输入的顺序。
type BlogTag struct {
	ID       uint   `gorm:"primaryKey"`
	BlogID   uint   `gorm:"not null;index"`
	Position int    `gorm:"not null"`
	Value    string `gorm:"size:30;not null;index"`
}

// BlogLike 点赞关系，联合主键保证同一用户对同一博客至多一条记录。
type BlogLike struct {
	BlogID    uint `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

// TagValues 按 Position 顺序返回标签文本。
func (b *Blog) TagValues() []string {
	values := make([]string, 0, len(b.Tags))
	for _, tag := range b.Tags {
		values = append(values, tag.Value)
	}
	return values
}
