package handlers

import (
	"errors"
	"net/http"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PatientHandler struct {
	log *zap.Logger
}

func NewPatientHandler(log *zap.Logger) *PatientHandler {
	return &PatientHandler{log: log}
}

type createPatientRequest struct {
	FullName      string   `json:"fullName" binding:"required"`
	Diagnosis     string   `json:"diagnosis"`
	BaselineScore *float64 `json:"baselineScore"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var body createPatientRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required"})
		return
	}
	if body.BaselineScore != nil && (*body.BaselineScore < 0 || *body.BaselineScore > 10) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baselineScore must be between 0 and 10"})
		return
	}

	patient, err := repository.CreatePatient(c.Request.Context(), body.FullName, body.Diagnosis, body.BaselineScore)
	if err != nil {
		h.log.Error("Failed to create patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create patient"})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := repository.ListPatients(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list patients"})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	patient, err := repository.GetPatientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		h.log.Error("Failed to load patient", zap.Error(err), zap.String("patientID", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patient"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

type updateStatusRequest struct {
	Status models.PatientStatus `json:"status" binding:"required"`
}

func (h *PatientHandler) UpdateStatus(c *gin.Context) {
	var body updateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	switch body.Status {
	case models.PatientActive, models.PatientPaused, models.PatientCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active, paused or completed"})
		return
	}

	if err := repository.UpdatePatientStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		h.log.Error("Failed to update patient status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	c.Status(http.StatusNoContent)
}
