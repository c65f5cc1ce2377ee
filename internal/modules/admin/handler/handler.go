package handler

import adminservice "blog-platform-server/internal/modules/admin/service"

type Handler struct {
	adminService *adminservice.Service
}

func New(adminService *adminservice.Service) *Handler {
	return &Handler{adminService: adminService}
}
