package imagehost

import (
	"encoding/base64"
	"errors"
	"strings"

	"blog-platform-server/internal/utils"
)

var (
	// ErrNotConfigured 未配置图片托管服务
	ErrNotConfigured = errors.New("image upload service not configured")
	// ErrInvalidImage data URI 无法解析或不是受支持的图片格式
	ErrInvalidImage = errors.New("invalid image data")
)

const dataURIPrefix = "data:"

// Image 已解码的待上传图片。
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// IsDataURI 判断引用是否为内联的 data URI。
func IsDataURI(ref string) bool {
	return strings.HasPrefix(strings.TrimSpace(ref), dataURIPrefix)
}

// ParseDataURI 解析 base64 编码的 data URI，并按真实内容识别图片类型。
// 声明的 MIME 类型仅作参考，不作为判断依据。
func ParseDataURI(ref string) (Image, error) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, dataURIPrefix) {
		return Image{}, ErrInvalidImage
	}

	meta, payload, found := strings.Cut(ref[len(dataURIPrefix):], ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return Image{}, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// 兼容省略填充的编码
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return Image{}, ErrInvalidImage
		}
	}
	if len(data) == 0 {
		return Image{}, ErrInvalidImage
	}

	contentType, ext, ok := utils.DetectImageType(data)
	if !ok {
		return Image{}, ErrInvalidImage
	}
	return Image{Data: data, ContentType: contentType, Ext: ext}, nil
}
