package router

import (
	"net/http"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PractitionerLoader checks for a practitionerID in the session.
// If found, it loads the account from the database and adds it to the
// context. This ensures we don't have "zombie" sessions for accounts that
// no longer exist.
func PractitionerLoader(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		practitionerID, ok := session.Get("practitionerID").(string)
		if !ok {
			// No ID in session, proceed as a guest.
			c.Next()
			return
		}

		practitioner, err := repository.GetPractitionerByID(c.Request.Context(), practitionerID)
		if err != nil {
			// ID from session is invalid (account was deleted, etc.)
			// Clear the bad session and treat as a guest.
			log.Debug("Clearing stale session", zap.String("practitionerID", practitionerID))
			session.Clear()
			session.Options(sessions.Options{Path: "/", MaxAge: -1})
			session.Save()
			c.Next()
			return
		}

		// Account is valid, store it in context for other handlers.
		c.Set("practitioner", practitioner)
		c.Next()
	}
}

// AuthRequired simply checks if a valid practitioner was loaded into the
// context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("practitioner"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
