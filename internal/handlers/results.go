// results.go
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

type ResultsHandler struct {
	log     *zap.Logger
	catalog *models.ScaleCatalog
}

func NewResultsHandler(log *zap.Logger, catalog *models.ScaleCatalog) *ResultsHandler {
	return &ResultsHandler{log: log, catalog: catalog}
}

// Summary returns count/average/min/max and the trend classification for
// one (patient, scale) series. When the patient has no responses yet the
// handler renders an explicit empty state rather than an error.
func (h *ResultsHandler) Summary(c *gin.Context) {
	scaleType := c.Param("scale")
	if _, ok := h.catalog.Get(scaleType); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown scale type"})
		return
	}

	responses, err := repository.ListResponses(c.Request.Context(), c.Param("id"), scaleType)
	if err != nil {
		h.log.Error("Failed to load response series", zap.Error(err), zap.String("scaleType", scaleType))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load responses"})
		return
	}

	stats, err := analytics.Statistics(responses)
	if err != nil {
		// Empty series: an explicit empty state, not a zero.
		c.JSON(http.StatusOK, gin.H{
			"count":   0,
			"message": "no assessments recorded for this scale yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statistics": stats,
		"responses":  responses,
	})
}

// TimelineChart returns echarts line options plotting the score series over
// time, for the client to render.
func (h *ResultsHandler) TimelineChart(c *gin.Context) {
	scaleType := c.Param("scale")
	scale, ok := h.catalog.Get(scaleType)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown scale type"})
		return
	}

	responses, err := repository.ListResponses(c.Request.Context(), c.Param("id"), scaleType)
	if err != nil {
		h.log.Error("Failed to load response series", zap.Error(err), zap.String("scaleType", scaleType))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load responses"})
		return
	}

	chart := generateScoreTimelineChart(responses, scale)
	c.JSON(http.StatusOK, chart.JSON())
}

func generateScoreTimelineChart(responses []models.ScaleResponse, scale *models.ScaleDefinition) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Score Over Time",
			Subtitle: scale.Name,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			// Helps the axis scale nicely around the score range
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	// Create data points in the format [date, score]
	items := make([]opts.LineData, 0)
	for _, r := range responses {
		items = append(items, opts.LineData{Value: []interface{}{r.AssessmentDate, r.TotalScore}})
	}

	line.AddSeries(scale.Name, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
