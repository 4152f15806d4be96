package models

import (
	"time"
)

// AnswerSet maps scale item IDs to the numeric value of the chosen option.
// A set is complete when its keys equal the scale's item IDs exactly.
type AnswerSet map[string]float64

// ScaleResponse is one scored application of a scale to a patient. Records
// are append-only: corrections are new responses, never edits, so the
// patient and scale names are denormalized snapshots taken at submission.
type ScaleResponse struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	PatientID      string `gorm:"type:uuid;index"`
	PatientName    string
	ScaleType      string
	ScaleName      string
	AssessmentDate time.Time
	Answers        AnswerSet `gorm:"serializer:json"`
	TotalScore     float64
	Interpretation string
	Notes          string
	CreatedAt      time.Time
}
