package service

import (
	"strings"

	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/blog/dto"
	"blog-platform-server/internal/modules/blog/repo"
	"blog-platform-server/internal/policy"
	platformservice "blog-platform-server/internal/platform/service"
)

// ListBlogs 公开博客列表，只包含已发布且有效的博客。
func (s *Service) ListBlogs(filter moduledto.BlogListFilter, offset, limit int) ([]moduledto.BlogItem, int64, error) {
	query := publicQuery(offset, limit)
	if category := strings.TrimSpace(filter.Category); category != "" && category != "all" {
		query.Category = category
	}
	query.AuthorID = filter.AuthorID
	query.Tag = filter.Tag
	query.Search = filter.Search
	switch filter.Sort {
	case repo.SortPopular, repo.SortOldest:
		query.Sort = filter.Sort
	default:
		query.Sort = repo.SortNewest
	}
	return s.listBlogs(query)
}

// SearchBlogs 按标题或正文做不区分大小写的子串匹配，关键字为空时退化为公开列表。
func (s *Service) SearchBlogs(keyword, category string, offset, limit int) ([]moduledto.BlogItem, int64, error) {
	return s.ListBlogs(moduledto.BlogListFilter{Search: keyword, Category: category}, offset, limit)
}

// ListAuthorBlogs 指定作者的公开博客列表。
func (s *Service) ListAuthorBlogs(authorID uint, offset, limit int) ([]moduledto.BlogItem, int64, error) {
	query := publicQuery(offset, limit)
	query.AuthorID = authorID
	return s.listBlogs(query)
}

// ListMyBlogs 当前用户自己的有效博客，包含草稿，可按状态过滤。
func (s *Service) ListMyBlogs(actor policy.Actor, status string, offset, limit int) ([]moduledto.BlogItem, int64, error) {
	if !actor.Authenticated {
		return nil, 0, platformservice.NewUnauthorizedError("请先登录")
	}

	active := true
	query := repo.BlogQuery{Active: &active, AuthorID: actor.ID, Offset: offset, Limit: limit}
	if consts.IsValidBlogStatus(status) {
		query.Status = status
	}
	return s.listBlogs(query)
}

// ListCategories 按固定顺序返回全部分类及其已发布博客数。
func (s *Service) ListCategories() ([]moduledto.CategoryCount, error) {
	counts, err := s.blogStore.CountPublishedByCategory()
	if err != nil {
		return nil, platformservice.WrapInternalError("获取分类失败", err)
	}

	categories := make([]moduledto.CategoryCount, 0, len(consts.Categories))
	for _, name := range consts.Categories {
		categories = append(categories, moduledto.CategoryCount{Name: name, Count: counts[name]})
	}
	return categories, nil
}

func publicQuery(offset, limit int) repo.BlogQuery {
	active := true
	return repo.BlogQuery{
		Active: &active,
		Status: consts.BlogStatusPublished,
		Offset: offset,
		Limit:  limit,
	}
}

func (s *Service) listBlogs(query repo.BlogQuery) ([]moduledto.BlogItem, int64, error) {
	blogs, total, err := s.blogStore.List(query)
	if err != nil {
		return nil, 0, platformservice.WrapInternalError("获取博客列表失败", err)
	}
	items, err := s.toBlogItems(blogs)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) toBlogItems(blogs []model.Blog) ([]moduledto.BlogItem, error) {
	ids := make([]uint, 0, len(blogs))
	for _, b := range blogs {
		ids = append(ids, b.ID)
	}
	counts, err := s.blogStore.CountActiveComments(ids)
	if err != nil {
		return nil, platformservice.WrapInternalError("获取评论数失败", err)
	}

	items := make([]moduledto.BlogItem, 0, len(blogs))
	for i := range blogs {
		items = append(items, toBlogItem(&blogs[i], counts[blogs[i].ID]))
	}
	return items, nil
}
