package models

import (
	"time"
)

type PatientStatus string

const (
	PatientActive    PatientStatus = "active"
	PatientPaused    PatientStatus = "paused"
	PatientCompleted PatientStatus = "completed"
)

// Patient is the clinical record the engines consume read-only. The baseline
// score is the symptom severity (0-10, higher is worse) recorded at intake;
// it is optional because older records predate the intake form.
type Patient struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	FullName      string
	Diagnosis     string
	BaselineScore *float64
	Status        PatientStatus `gorm:"default:active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
