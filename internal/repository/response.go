// response.go
package repository

import (
	"context"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/database"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
)

// AppendResponse inserts a scored response into the ledger. There is no
// update path: a correction is a new response with a new ID.
func AppendResponse(ctx context.Context, response *models.ScaleResponse) error {
	return database.DB.WithContext(ctx).Create(response).Error
}

// ListResponses returns the full series for one (patient, scale) pair,
// ordered ascending by assessment date. That ordering is the contract the
// statistics engine relies on.
func ListResponses(ctx context.Context, patientID, scaleType string) ([]models.ScaleResponse, error) {
	var responses []models.ScaleResponse
	result := database.DB.WithContext(ctx).
		Where("patient_id = ? AND scale_type = ?", patientID, scaleType).
		Order("assessment_date").
		Find(&responses)
	return responses, result.Error
}

// ListResponsesForPatient returns every response for a patient regardless of
// scale, newest first, for the record overview.
func ListResponsesForPatient(ctx context.Context, patientID string) ([]models.ScaleResponse, error) {
	var responses []models.ScaleResponse
	result := database.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("assessment_date DESC").
		Find(&responses)
	return responses, result.Error
}
