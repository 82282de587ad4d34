package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CyclePhase string

const (
	CyclePhaseMenstrual  CyclePhase = "menstrual"
	CyclePhaseFollicular CyclePhase = "follicular"
	CyclePhaseOvulation  CyclePhase = "ovulation"
	CyclePhaseLuteal     CyclePhase = "luteal"
)

func (phase CyclePhase) Valid() bool {
	switch phase {
	case CyclePhaseMenstrual, CyclePhaseFollicular, CyclePhaseOvulation, CyclePhaseLuteal:
		return true
	default:
		return false
	}
}

// Tip is a piece of guidance shown for a specific cycle day, a cycle phase,
// or always when neither is set.
type Tip struct {
	ID         string      `gorm:"primaryKey;type:text" json:"id"`
	Title      string      `gorm:"not null" json:"title"`
	Content    string      `gorm:"not null" json:"content"`
	Category   string      `json:"category,omitempty"`
	CycleDay   *int        `json:"cycleDay,omitempty"`
	CyclePhase *CyclePhase `gorm:"type:text" json:"cyclePhase,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func (tip *Tip) BeforeCreate(*gorm.DB) error {
	if tip.ID == "" {
		tip.ID = uuid.NewString()
	}
	return nil
}
