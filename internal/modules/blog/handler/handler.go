package handler

import blogservice "blog-platform-server/internal/modules/blog/service"

type Handler struct {
	blogService *blogservice.Service
}

func New(blogService *blogservice.Service) *Handler {
	return &Handler{blogService: blogService}
}
