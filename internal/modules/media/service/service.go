package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/platform/imagehost"
	platformservice "blog-platform-server/internal/platform/service"

	"github.com/rs/zerolog/log"
)

// InlineFolder 通用内联上传接口使用的目录。
const InlineFolder = "uploads"

type Service struct {
	*platformservice.AppService
	host imagehost.Host
}

func New(appService *platformservice.AppService, host imagehost.Host) *Service {
	if host == nil {
		host = imagehost.Disabled{}
	}
	return &Service{AppService: appService, host: host}
}

// Resolve 将图片引用转换为可保存的地址：
// 空串原样返回，非 data URI 视为已托管地址直接返回，data URI 解码后上传。
func (s *Service) Resolve(ctx context.Context, folder, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || !imagehost.IsDataURI(ref) {
		return ref, nil
	}
	return s.upload(ctx, folder, ref)
}

// UploadInline 上传内联图片，只接受 data URI。
func (s *Service) UploadInline(ctx context.Context, ref string) (string, error) {
	if !imagehost.IsDataURI(ref) {
		return "", platformservice.NewValidationError("请提供 data URI 格式的图片")
	}
	return s.upload(ctx, InlineFolder, ref)
}

func (s *Service) upload(ctx context.Context, folder, ref string) (string, error) {
	if !s.host.Enabled() {
		return "", platformservice.NewUpstreamUnavailableError(imagehost.ErrNotConfigured.Error())
	}

	img, err := imagehost.ParseDataURI(ref)
	if err != nil {
		return "", platformservice.NewValidationError("图片格式无效，仅支持 jpeg/png/gif/webp")
	}

	maxSizeMB := s.GetInt(consts.ConfigMaxUploadSize)
	if maxSizeMB > 0 && len(img.Data) > maxSizeMB*1024*1024 {
		return "", platformservice.NewValidationError(fmt.Sprintf("图片大小不能超过 %dMB", maxSizeMB))
	}

	url, err := s.host.Upload(ctx, folder, img)
	if err != nil {
		if errors.Is(err, imagehost.ErrNotConfigured) {
			return "", platformservice.NewUpstreamUnavailableError(err.Error())
		}
		log.Error().Err(err).Str("folder", folder).Msg("图片上传失败")
		return "", &platformservice.ServiceError{
			Code:    platformservice.ErrorCodeUpstreamUnavailable,
			Message: "图片上传失败，请稍后重试",
			Cause:   err,
		}
	}
	return url, nil
}
