package repo

import "gorm.io/gorm"

func NewBlogRepository(db *gorm.DB) BlogStore {
	return &BlogRepository{db: db}
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}
