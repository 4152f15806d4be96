package models

import (
	"time"

	"github.com/lib/pq"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
)

// Session is one stimulation session. Points holds the 10-20 electrode codes
// stimulated (e.g. F3, Cz). SymptomScore is the patient's 0-10 severity
// rating taken at the end of the session; nil when not collected.
type Session struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	PatientID    string `gorm:"type:uuid;index"`
	PlanID       string `gorm:"type:uuid"`
	SessionDate  time.Time
	Points       pq.StringArray `gorm:"type:text[]"`
	SymptomScore *float64
	CurrentMA    *float64
	DurationMin  *int
	Status       SessionStatus `gorm:"default:scheduled"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
