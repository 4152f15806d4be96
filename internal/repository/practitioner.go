package repository

import (
	"context"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/database"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func CreatePractitioner(email, password, firstName, lastName string) (*models.Practitioner, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	practitioner := &models.Practitioner{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: firstName,
		LastName:  lastName,
	}
	result := database.DB.Create(practitioner)
	return practitioner, result.Error
}

func GetPractitionerByEmail(ctx context.Context, email string) (*models.Practitioner, error) {
	var practitioner models.Practitioner
	result := database.DB.WithContext(ctx).First(&practitioner, "email = ?", email)
	return &practitioner, result.Error
}

func GetPractitionerByID(ctx context.Context, id string) (*models.Practitioner, error) {
	var practitioner models.Practitioner
	result := database.DB.WithContext(ctx).First(&practitioner, "id = ?", id)
	return &practitioner, result.Error
}

func UpdatePractitionerPassword(ctx context.Context, id string, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.Practitioner{}).Where("id = ?", id).Update("password", string(hashedPassword)).Error
}
