package handlers

import (
	"net/http"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/repository"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	log *zap.Logger
}

func NewAuthHandler(log *zap.Logger) *AuthHandler {
	return &AuthHandler{log: log}
}

type credentials struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	practitioner, err := repository.GetPractitionerByEmail(c.Request.Context(), body.Email)
	if err != nil || !practitioner.CheckPassword(body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	session := sessions.Default(c)
	session.Set("practitionerID", practitioner.ID)
	if err := session.Save(); err != nil {
		h.log.Error("Failed to save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        practitioner.ID,
		"email":     practitioner.Email,
		"firstName": practitioner.FirstName,
		"lastName":  practitioner.LastName,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if !utils.IsValidEmail(body.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email address is required"})
		return
	}
	if !utils.IsComplexPassword(body.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 10 characters mixing three of: upper, lower, digits, symbols"})
		return
	}

	practitioner, err := repository.CreatePractitioner(body.Email, body.Password, body.FirstName, body.LastName)
	if err != nil {
		h.log.Error("Failed to create practitioner", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": practitioner.ID, "email": practitioner.Email})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to logout"})
		return
	}
	c.Status(http.StatusNoContent)
}
