package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinFlowIntensity = 0
	MaxFlowIntensity = 10
)

type DailyLog struct {
	ID                     string    `gorm:"primaryKey;type:text" json:"id"`
	UserID                 string    `gorm:"not null;index:idx_daily_logs_user_date" json:"userId"`
	Date                   time.Time `gorm:"type:date;not null;index:idx_daily_logs_user_date" json:"date"`
	CycleDay               *int      `json:"cycleDay,omitempty"`
	PhysicalPainSymptoms   []string  `gorm:"serializer:json" json:"physicalPainSymptoms"`
	MoodMentalStates       []string  `gorm:"serializer:json" json:"moodMentalStates"`
	FlowIntensity          *int      `json:"flowIntensity,omitempty"`
	PeriodIndicators       []string  `gorm:"serializer:json" json:"periodIndicators"`
	SexualHealthIndicators []string  `gorm:"serializer:json" json:"sexualHealthIndicators"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func (entry *DailyLog) BeforeCreate(*gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}

// Intensity reports the logged flow intensity, treating a missing value as zero.
func (entry DailyLog) Intensity() int {
	if entry.FlowIntensity == nil {
		return 0
	}
	return *entry.FlowIntensity
}
