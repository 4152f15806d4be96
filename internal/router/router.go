// router.go
package router

import (
	"net/http"
	"time"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/config"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/handlers"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
}

func Setup(log *zap.Logger, catalog *models.ScaleCatalog, regions *models.RegionMap) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("neuromap_session", store))

	router.Use(PractitionerLoader(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	patientHandler := handlers.NewPatientHandler(log)
	sessionHandler := handlers.NewSessionHandler(log, regions)
	responseHandler := handlers.NewResponseHandler(log, catalog)
	resultsHandler := handlers.NewResultsHandler(log, catalog)
	reportsHandler := handlers.NewReportsHandler(log, regions)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	router.POST("/login", limiter, authHandler.Login)
	router.POST("/register", limiter, authHandler.Register)
	router.POST("/logout", authHandler.Logout)

	api := router.Group("/api")
	api.Use(AuthRequired())
	{
		api.GET("/scales", responseHandler.ListScales)

		patientRoutes := api.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.Create)
			patientRoutes.GET("", patientHandler.List)
			patientRoutes.GET("/:id", patientHandler.Get)
			patientRoutes.PATCH("/:id/status", patientHandler.UpdateStatus)

			patientRoutes.POST("/:id/plans", sessionHandler.CreatePlan)
			patientRoutes.GET("/:id/plans", sessionHandler.ListPlansForPatient)

			patientRoutes.POST("/:id/sessions", sessionHandler.Create)
			patientRoutes.GET("/:id/sessions", sessionHandler.ListForPatient)
			patientRoutes.POST("/:id/sessions/:sessionId/complete", sessionHandler.Complete)

			patientRoutes.POST("/:id/responses", responseHandler.Submit)
			patientRoutes.GET("/:id/responses", responseHandler.ListForPatient)
			patientRoutes.GET("/:id/scales/:scale/summary", resultsHandler.Summary)
			patientRoutes.GET("/:id/scales/:scale/chart", resultsHandler.TimelineChart)
		}

		reportRoutes := api.Group("/reports")
		{
			reportRoutes.GET("/effectiveness/regions", reportsHandler.EffectivenessByRegion)
			reportRoutes.GET("/effectiveness/regions/chart", reportsHandler.RegionChart)
			reportRoutes.GET("/effectiveness/diagnoses", reportsHandler.EffectivenessByDiagnosis)
		}
	}

	return router
}
