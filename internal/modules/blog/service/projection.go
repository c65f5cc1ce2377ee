package service

import (
	"blog-platform-server/internal/model"
	moduledto "blog-platform-server/internal/modules/blog/dto"
)

func toAuthorSummary(u model.User, withBio bool) moduledto.AuthorSummary {
	summary := moduledto.AuthorSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	if withBio {
		summary.Bio = u.Bio
	}
	return summary
}

func toBlogItem(b *model.Blog, commentsCount int64) moduledto.BlogItem {
	return moduledto.BlogItem{
		ID:            b.ID,
		Title:         b.Title,
		Excerpt:       b.Excerpt,
		Category:      b.Category,
		Tags:          b.TagValues(),
		Image:         b.Image,
		Author:        toAuthorSummary(b.Author, false),
		Views:         b.Views,
		LikesCount:    b.LikeCount,
		CommentsCount: commentsCount,
		Status:        b.Status,
		IsActive:      b.IsActive,
		ReadTime:      b.ReadTime,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toCommentItem(c *model.Comment) moduledto.CommentItem {
	return moduledto.CommentItem{
		ID:        c.ID,
		BlogID:    c.BlogID,
		Text:      c.Text,
		User:      toAuthorSummary(c.User, false),
		CreatedAt: c.CreatedAt,
	}
}

func toBlogDetail(b *model.Blog, comments []model.Comment) *moduledto.BlogDetail {
	items := make([]moduledto.CommentItem, 0, len(comments))
	for i := range comments {
		items = append(items, toCommentItem(&comments[i]))
	}

	item := toBlogItem(b, int64(len(items)))
	item.Author = toAuthorSummary(b.Author, true)
	return &moduledto.BlogDetail{
		BlogItem: item,
		Content:  b.Content,
		Comments: items,
	}
}

func toAdminCommentItem(c *model.Comment) moduledto.AdminCommentItem {
	return moduledto.AdminCommentItem{
		ID:       c.ID,
		Text:     c.Text,
		IsActive: c.IsActive,
		User: moduledto.AdminCommentUser{
			ID:     c.User.ID,
			Name:   c.User.Name,
			Avatar: c.User.Avatar,
			Email:  c.User.Email,
		},
		Blog:      moduledto.AdminCommentBlog{ID: c.Blog.ID, Title: c.Blog.Title},
		CreatedAt: c.CreatedAt,
	}
}
