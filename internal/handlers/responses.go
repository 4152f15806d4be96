package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/repository"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ResponseHandler struct {
	log     *zap.Logger
	catalog *models.ScaleCatalog
}

func NewResponseHandler(log *zap.Logger, catalog *models.ScaleCatalog) *ResponseHandler {
	return &ResponseHandler{log: log, catalog: catalog}
}

type submitResponseRequest struct {
	ScaleType      string           `json:"scaleType" binding:"required"`
	AssessmentDate time.Time        `json:"assessmentDate" binding:"required"`
	Answers        models.AnswerSet `json:"answers" binding:"required"`
	Notes          string           `json:"notes"`
}

// Submit scores an answer set and appends the result to the patient's
// response ledger. Scoring failures block the submission; a miscored
// clinical assessment must never be silently recorded.
func (h *ResponseHandler) Submit(c *gin.Context) {
	var body submitResponseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scaleType, assessmentDate and answers are required"})
		return
	}

	patient, err := repository.GetPatientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		h.log.Error("Failed to load patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patient"})
		return
	}

	result, err := scoring.Score(h.catalog, body.ScaleType, body.Answers)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrUnknownScaleType):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, scoring.ErrIncompleteResponse):
			c.JSON(http.StatusBadRequest, gin.H{"error": "answer all items before submitting", "detail": err.Error()})
		default:
			h.log.Error("Failed to score response", zap.Error(err), zap.String("scaleType", body.ScaleType))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to score response"})
		}
		return
	}

	scale, _ := h.catalog.Get(body.ScaleType)
	response := &models.ScaleResponse{
		ID:             uuid.NewString(),
		PatientID:      patient.ID,
		PatientName:    patient.FullName,
		ScaleType:      scale.ID,
		ScaleName:      scale.Name,
		AssessmentDate: body.AssessmentDate,
		Answers:        body.Answers,
		TotalScore:     result.TotalScore,
		Interpretation: result.Interpretation,
		Notes:          body.Notes,
	}
	if err := repository.AppendResponse(c.Request.Context(), response); err != nil {
		h.log.Error("Failed to append response", zap.Error(err), zap.String("patientID", patient.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save response"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ResponseHandler) ListForPatient(c *gin.Context) {
	scaleType := c.Query("scale")

	var (
		responses []models.ScaleResponse
		err       error
	)
	if scaleType != "" {
		responses, err = repository.ListResponses(c.Request.Context(), c.Param("id"), scaleType)
	} else {
		responses, err = repository.ListResponsesForPatient(c.Request.Context(), c.Param("id"))
	}
	if err != nil {
		h.log.Error("Failed to list responses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list responses"})
		return
	}
	c.JSON(http.StatusOK, responses)
}

// ListScales exposes the static catalog so the client can render the items
// of each scale.
func (h *ResponseHandler) ListScales(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Scales())
}
