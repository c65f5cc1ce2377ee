package utils

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"blog-platform-server/internal/consts"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail 去除首尾空白并统一为小写。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks basic email format. 要求域名部分包含点号。
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "邮箱不能为空"
	}
	if err := validate.Var(email, "email"); err != nil {
		return false, "邮箱格式不正确"
	}
	at := strings.LastIndex(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return false, "邮箱格式不正确"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
func ValidatePassword(password string) (bool, string) {
	if utf8.RuneCountInString(password) < consts.PasswordMinLength {
		return false, "密码最少6位"
	}
	return true, ""
}

// ValidateName 校验显示名称，调用方需先去除首尾空白。
func ValidateName(name string) (bool, string) {
	if name == "" {
		return false, "姓名不能为空"
	}
	if utf8.RuneCountInString(name) > consts.UserNameMaxLength {
		return false, "姓名不能超过50个字符"
	}
	return true, ""
}

// LikeEscapeChar 与 EscapeLike 配合使用，查询中需写 ESCAPE '!'。
const LikeEscapeChar = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// EscapeLike 转义 LIKE 通配符，使用户输入按字面匹配。
func EscapeLike(s string) string {
	return likeReplacer.Replace(s)
}

// ContainsPattern 返回小写化并转义后的子串匹配模式。
func ContainsPattern(s string) string {
	return "%" + EscapeLike(strings.ToLower(s)) + "%"
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectImageType 根据文件内容识别图片类型，仅接受 jpeg/png/gif/webp。
func DetectImageType(data []byte) (contentType string, ext string, ok bool) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType = http.DetectContentType(head)
	ext, ok = imageExtensions[contentType]
	return contentType, ext, ok
}
