package repo

import "gorm.io/gorm"

func NewStatsRepository(db *gorm.DB) StatsStore {
	return &StatsRepository{db: db}
}
