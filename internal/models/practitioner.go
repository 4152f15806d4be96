package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Practitioner is the clinician account that owns the patient panel.
type Practitioner struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Practitioner) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password))
	return err == nil
}
