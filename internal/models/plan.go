package models

import (
	"time"

	"github.com/lib/pq"
)

// TherapeuticPlan is the prescribed course of stimulation for a patient:
// a target montage and a planned number of sessions.
type TherapeuticPlan struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	PatientID       string `gorm:"type:uuid;index"`
	Name            string
	Goal            string
	TargetPoints    pq.StringArray `gorm:"type:text[]"`
	PlannedSessions int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
