package database

import (
	"fmt"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/config"
	logging "github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/logging"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.Practitioner{},
		&models.Patient{},
		&models.TherapeuticPlan{},
		&models.Session{},
		&models.ScaleResponse{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// The response ledger is always read per (patient, scale) in date order.
	ledgerIndex := `CREATE INDEX IF NOT EXISTS idx_responses_ledger ON scale_responses (patient_id, scale_type, assessment_date);`
	if err := DB.Exec(ledgerIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on responses table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
