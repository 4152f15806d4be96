package handlers

import (
	"net/http"
	"time"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionHandler struct {
	log     *zap.Logger
	regions *models.RegionMap
}

func NewSessionHandler(log *zap.Logger, regions *models.RegionMap) *SessionHandler {
	return &SessionHandler{log: log, regions: regions}
}

type createSessionRequest struct {
	PlanID      string    `json:"planId"`
	SessionDate time.Time `json:"sessionDate" binding:"required"`
	Points      []string  `json:"points" binding:"required"`
	CurrentMA   *float64  `json:"currentMA"`
	DurationMin *int      `json:"durationMin"`
}

func (h *SessionHandler) Create(c *gin.Context) {
	var body createSessionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionDate and points are required"})
		return
	}

	// Unmapped electrode codes are allowed (the region report just skips
	// them), but warn so catalog gaps surface early.
	for _, point := range body.Points {
		if _, ok := h.regions.RegionForPoint(point); !ok {
			h.log.Warn("Session targets a point with no region mapping", zap.String("point", point))
		}
	}

	session, err := repository.CreateSession(c.Request.Context(), c.Param("id"), body.PlanID, body.SessionDate, body.Points, body.CurrentMA, body.DurationMin)
	if err != nil {
		h.log.Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

type completeSessionRequest struct {
	SymptomScore *float64 `json:"symptomScore"`
}

func (h *SessionHandler) Complete(c *gin.Context) {
	var body completeSessionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.SymptomScore != nil && (*body.SymptomScore < 0 || *body.SymptomScore > 10) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptomScore must be between 0 and 10"})
		return
	}

	if err := repository.CompleteSession(c.Request.Context(), c.Param("sessionId"), body.SymptomScore); err != nil {
		h.log.Error("Failed to complete session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete session"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) ListForPatient(c *gin.Context) {
	sessionList, err := repository.ListSessionsForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Failed to list sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessionList)
}

type createPlanRequest struct {
	Name            string   `json:"name" binding:"required"`
	Goal            string   `json:"goal"`
	TargetPoints    []string `json:"targetPoints"`
	PlannedSessions int      `json:"plannedSessions"`
}

func (h *SessionHandler) CreatePlan(c *gin.Context) {
	var body createPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	plan, err := repository.CreatePlan(c.Request.Context(), c.Param("id"), body.Name, body.Goal, body.TargetPoints, body.PlannedSessions)
	if err != nil {
		h.log.Error("Failed to create plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *SessionHandler) ListPlansForPatient(c *gin.Context) {
	plans, err := repository.ListPlansForPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Failed to list plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}
