package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"blog-platform-server/internal/consts"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// DeriveExcerpt 去除 HTML 标签并折叠空白，超过 300 字符时截断为 297 字符加省略号。
func DeriveExcerpt(content string) string {
	plain := strings.Join(strings.Fields(htmlTagPattern.ReplaceAllString(content, " ")), " ")
	if utf8.RuneCountInString(plain) <= consts.BlogExcerptMaxLength {
		return plain
	}
	runes := []rune(plain)
	return string(runes[:consts.BlogExcerptMaxLength-3]) + "..."
}

// DeriveReadTime 按每分钟 200 词估算阅读时长，至少 1 分钟。
func DeriveReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + consts.ReadTimeWordsPerMinute - 1) / consts.ReadTimeWordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
