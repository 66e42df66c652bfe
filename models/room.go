package models

import (
	"fmt"
	"time"
)

// Room condition constants
const (
	ConditionClean            = "Clean"
	ConditionDirty            = "Dirty"
	ConditionUnderMaintenance = "UnderMaintenance"
)

type Room struct {
	Number       string        `json:"number" gorm:"primaryKey"`
	Type         string        `json:"type" gorm:"not null;index"`
	DailyRate    float64       `json:"dailyRate" gorm:"not null"`
	Condition    string        `json:"condition" gorm:"not null;default:Clean"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Reservations []Reservation `json:"-" gorm:"foreignKey:RoomNumber;references:Number;constraint:OnDelete:CASCADE"`
}

func (r *Room) ValidateCondition() error {
	switch r.Condition {
	case ConditionClean, ConditionDirty, ConditionUnderMaintenance:
		return nil
	}
	return fmt.Errorf("invalid condition: %s", r.Condition)
}

func (r *Room) ValidateRate() error {
	if r.DailyRate <= 0 {
		return fmt.Errorf("invalid daily rate: %v, must be greater than 0", r.DailyRate)
	}
	return nil
}
