package service

import (
	"context"
	"errors"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/model"
	"blog-platform-server/internal/modules/blog/repo"
	platformservice "blog-platform-server/internal/platform/service"

	"gorm.io/gorm"
)

// 图片存放目录
const (
	CoverFolder = "covers"
	ImageFolder = "blogs"
)

// MediaResolver 将 data URI 上传为图床地址，已是 URL 的引用原样返回。
type MediaResolver interface {
	Resolve(ctx context.Context, folder, ref string) (string, error)
}

type Service struct {
	*platformservice.AppService
	blogStore    repo.BlogStore
	commentStore repo.CommentStore
	media        MediaResolver
	defaultCover string
	likeOptions  repo.LikeOptions
}

func New(
	appService *platformservice.AppService,
	blogStore repo.BlogStore,
	commentStore repo.CommentStore,
	media MediaResolver,
	imageCfg config.ImageHostConfig,
	contentCfg config.ContentConfig,
) *Service {
	return &Service{
		AppService:   appService,
		blogStore:    blogStore,
		commentStore: commentStore,
		media:        media,
		defaultCover: imageCfg.DefaultCover,
		likeOptions: repo.LikeOptions{
			Optimistic: contentCfg.OptimisticLocking,
			MaxRetries: contentCfg.MaxRetries,
		},
	}
}

// getActiveBlog 读取博客，不存在或已软删除均视为不存在。
func (s *Service) getActiveBlog(blogID uint) (*model.Blog, error) {
	blog, err := s.blogStore.FindByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("博客不存在")
		}
		return nil, platformservice.WrapInternalError("获取博客失败", err)
	}
	if !blog.IsActive {
		return nil, platformservice.NewNotFoundError("博客不存在")
	}
	return blog, nil
}

func (s *Service) resolveImage(ctx context.Context, folder, ref string) (string, error) {
	if s.media == nil {
		return ref, nil
	}
	return s.media.Resolve(ctx, folder, ref)
}
