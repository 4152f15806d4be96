package repository

import (
	"context"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/database"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/google/uuid"
)

func CreatePatient(ctx context.Context, fullName, diagnosis string, baselineScore *float64) (*models.Patient, error) {
	patient := &models.Patient{
		ID:            uuid.NewString(),
		FullName:      fullName,
		Diagnosis:     diagnosis,
		BaselineScore: baselineScore,
		Status:        models.PatientActive,
	}
	result := database.DB.WithContext(ctx).Create(patient)
	return patient, result.Error
}

func GetPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	result := database.DB.WithContext(ctx).First(&patient, "id = ?", id)
	return &patient, result.Error
}

func ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	result := database.DB.WithContext(ctx).Order("created_at").Find(&patients)
	return patients, result.Error
}

func UpdatePatientStatus(ctx context.Context, id string, status models.PatientStatus) error {
	return database.DB.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Update("status", status).Error
}
