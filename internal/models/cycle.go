package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCycleLength = 28

type CycleStatus string

const (
	CycleStatusActive    CycleStatus = "active"
	CycleStatusCompleted CycleStatus = "completed"
)

type Cycle struct {
	ID              string      `gorm:"primaryKey;type:text" json:"id"`
	UserID          string      `gorm:"not null;index" json:"userId"`
	StartDate       time.Time   `gorm:"type:date;not null" json:"startDate"`
	EndDate         *time.Time  `gorm:"type:date" json:"endDate,omitempty"`
	CycleLength     int         `gorm:"not null;default:28" json:"cycleLength"`
	PeriodStartDate *time.Time  `gorm:"type:date" json:"periodStartDate,omitempty"`
	PeriodEndDate   *time.Time  `gorm:"type:date" json:"periodEndDate,omitempty"`
	CurrentCycleDay *int        `json:"currentCycleDay,omitempty"`
	Status          CycleStatus `gorm:"not null;default:active" json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (cycle *Cycle) BeforeCreate(*gorm.DB) error {
	if cycle.ID == "" {
		cycle.ID = uuid.NewString()
	}
	return nil
}

func (cycle Cycle) IsCompleted() bool {
	return cycle.Status == CycleStatusCompleted
}
