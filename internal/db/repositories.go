package db

import "gorm.io/gorm"

type Repositories struct {
	Cycles    *CycleRepository
	DailyLogs *DailyLogRepository
	Tips      *TipRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cycles:    NewCycleRepository(database),
		DailyLogs: NewDailyLogRepository(database),
		Tips:      NewTipRepository(database),
	}
}
