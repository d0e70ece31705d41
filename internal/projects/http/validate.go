package http

import (
	"github.com/GoSim-25-26J-441/projects-api/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
	"github.com/gin-gonic/gin"
)

// ValidateProjectID rejects requests whose :id path segment is not a
// well-formed project id. Attach it only to routes that declare :id.
func ValidateProjectID() gin.HandlerFunc {
	return middleware.Stage(func(c *gin.Context) middleware.Decision {
		if !domain.IsValidProjectID(c.Param("id")) {
			return middleware.ShortCircuit(errorResponse(domain.ErrInvalidID))
		}
		return middleware.Continue()
	})
}
