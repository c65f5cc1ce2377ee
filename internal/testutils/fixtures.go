package testutils

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword 为测试用户统一使用的明文密码。
const DefaultPassword = "secret123"

// MinimalPNG 为 1x1 像素的 PNG 图片。
var MinimalPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

// PNGDataURI 返回 MinimalPNG 的 data URI 形式。
func PNGDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(MinimalPNG)
}

// LongContent 返回不少于 n 个单词的正文。
func LongContent(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

// CreateUser 以默认密码创建一个启用状态的用户。
func CreateUser(t *testing.T, gdb *gorm.DB, name, role string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &model.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// CreateBlog 为指定作者创建一篇已发布的博客。
func CreateBlog(t *testing.T, gdb *gorm.DB, authorID uint, title, category string, tags ...string) *model.Blog {
	t.Helper()

	b := &model.Blog{
		Title:    title,
		Content:  LongContent(60),
		Excerpt:  title,
		Category: category,
		AuthorID: authorID,
		Status:   consts.BlogStatusPublished,
		IsActive: true,
		ReadTime: 1,
	}
	for i, tag := range tags {
		b.Tags = append(b.Tags, model.BlogTag{Position: i, Value: tag})
	}
	if err := gdb.Create(b).Error; err != nil {
		t.Fatalf("create blog: %v", err)
	}
	return b
}

// CreateComment 创建一条启用状态的评论。
func CreateComment(t *testing.T, gdb *gorm.DB, userID, blogID uint, text string) *model.Comment {
	t.Helper()

	c := &model.Comment{UserID: userID, BlogID: blogID, Text: text, IsActive: true}
	if err := gdb.Create(c).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return c
}

// SetCreatedAt 直接改写记录的创建时间，用于排序和统计相关测试。
func SetCreatedAt(t *testing.T, gdb *gorm.DB, m interface{}, id uint, at time.Time) {
	t.Helper()

	if err := gdb.Model(m).Where("id = ?", id).UpdateColumn("created_at", at).Error; err != nil {
		t.Fatal(fmt.Errorf("set created_at: %w", err))
	}
}
