package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRequest(t *testing.T, handler gin.HandlerFunc) *observer.ObservedLogs {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/api/patients", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/patients", nil))
	return logs
}

func TestRequestLoggerAttachesPractitionerID(t *testing.T) {
	logs := loggedRequest(t, func(c *gin.Context) {
		c.Set("practitioner", &models.Practitioner{ID: "f2a0d2c0-0000-4000-8000-000000000001"})
		c.Status(http.StatusOK)
	})

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "f2a0d2c0-0000-4000-8000-000000000001", fields["practitioner_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/patients", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRequestLoggerOmitsPractitionerWhenAnonymous(t *testing.T) {
	logs := loggedRequest(t, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "practitioner_id")
}

func TestRequestLoggerWarnsOnClientError(t *testing.T) {
	logs := loggedRequest(t, func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}
