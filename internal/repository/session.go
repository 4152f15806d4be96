package repository

import (
	"context"
	"time"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/database"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func CreateSession(ctx context.Context, patientID, planID string, date time.Time, points []string, currentMA *float64, durationMin *int) (*models.Session, error) {
	session := &models.Session{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		PlanID:      planID,
		SessionDate: date,
		Points:      pq.StringArray(points),
		CurrentMA:   currentMA,
		DurationMin: durationMin,
		Status:      models.SessionScheduled,
	}
	result := database.DB.WithContext(ctx).Create(session)
	return session, result.Error
}

// CompleteSession marks a session completed and records the post-session
// symptom score (nil when the patient declined to rate).
func CompleteSession(ctx context.Context, id string, symptomScore *float64) error {
	return database.DB.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        models.SessionCompleted,
		"symptom_score": symptomScore,
	}).Error
}

func ListSessionsForPatient(ctx context.Context, patientID string) ([]models.Session, error) {
	var sessions []models.Session
	result := database.DB.WithContext(ctx).Where("patient_id = ?", patientID).Order("session_date").Find(&sessions)
	return sessions, result.Error
}

// ListCompletedSessions returns every completed session across the panel,
// for the cross-patient effectiveness reports.
func ListCompletedSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	result := database.DB.WithContext(ctx).Where("status = ?", models.SessionCompleted).Order("session_date").Find(&sessions)
	return sessions, result.Error
}
