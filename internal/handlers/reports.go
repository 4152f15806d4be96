// reports.go
package handlers

import (
	"net/http"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/analytics"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ReportsHandler struct {
	log     *zap.Logger
	regions *models.RegionMap
}

func NewReportsHandler(log *zap.Logger, regions *models.RegionMap) *ReportsHandler {
	return &ReportsHandler{log: log, regions: regions}
}

// EffectivenessByRegion ranks anatomical regions by average symptom
// improvement across all completed sessions on the panel.
func (h *ReportsHandler) EffectivenessByRegion(c *gin.Context) {
	sessions, patients, ok := h.loadPanel(c)
	if !ok {
		return
	}

	ranked := analytics.EffectivenessByRegion(h.regions, sessions, patients)
	if len(ranked) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"regions": []analytics.RegionEffectiveness{},
			"message": "no sessions with both a symptom score and a patient baseline yet",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": ranked})
}

// EffectivenessByDiagnosis compares treatment outcomes across diagnosis
// cohorts.
func (h *ReportsHandler) EffectivenessByDiagnosis(c *gin.Context) {
	sessions, patients, ok := h.loadPanel(c)
	if !ok {
		return
	}

	ranked := analytics.EffectivenessByDiagnosis(patients, sessions)
	if len(ranked) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"diagnoses": []analytics.DiagnosisEffectiveness{},
			"message":   "no patients on the panel yet",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"diagnoses": ranked})
}

// RegionChart returns echarts bar options for the region ranking.
func (h *ReportsHandler) RegionChart(c *gin.Context) {
	sessions, patients, ok := h.loadPanel(c)
	if !ok {
		return
	}

	ranked := analytics.EffectivenessByRegion(h.regions, sessions, patients)
	c.JSON(http.StatusOK, generateRegionChart(ranked).JSON())
}

func (h *ReportsHandler) loadPanel(c *gin.Context) ([]models.Session, []models.Patient, bool) {
	sessions, err := repository.ListCompletedSessions(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load sessions for report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sessions"})
		return nil, nil, false
	}
	patients, err := repository.ListPatients(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load patients for report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load patients"})
		return nil, nil, false
	}
	return sessions, patients, true
}

func generateRegionChart(ranked []analytics.RegionEffectiveness) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Average Improvement by Region",
			Subtitle: "baseline minus post-session symptom score",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	names := make([]string, 0, len(ranked))
	items := make([]opts.BarData, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.RegionName)
		items = append(items, opts.BarData{Value: r.AverageImprovement})
	}

	bar.SetXAxis(names).AddSeries("Average Improvement", items)
	return bar
}
