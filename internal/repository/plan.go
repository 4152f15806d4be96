package repository

import (
	"context"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/database"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func CreatePlan(ctx context.Context, patientID, name, goal string, targetPoints []string, plannedSessions int) (*models.TherapeuticPlan, error) {
	plan := &models.TherapeuticPlan{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		Name:            name,
		Goal:            goal,
		TargetPoints:    pq.StringArray(targetPoints),
		PlannedSessions: plannedSessions,
	}
	result := database.DB.WithContext(ctx).Create(plan)
	return plan, result.Error
}

func ListPlansForPatient(ctx context.Context, patientID string) ([]models.TherapeuticPlan, error) {
	var plans []models.TherapeuticPlan
	result := database.DB.WithContext(ctx).Where("patient_id = ?", patientID).Order("created_at").Find(&plans)
	return plans, result.Error
}
