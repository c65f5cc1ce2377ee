package service

import (
	"blog-platform-server/internal/modules/admin/repo"
	platformservice "blog-platform-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	statsStore repo.StatsStore
}

func New(appService *platformservice.AppService, statsStore repo.StatsStore) *Service {
	return &Service{
		AppService: appService,
		statsStore: statsStore,
	}
}
