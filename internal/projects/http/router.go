package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Routes that
// carry :id get ValidateProjectID ahead of their handler.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", withProjectID(h.update)...)
	rg.DELETE("/:id", withProjectID(h.delete)...)
}

// withProjectID returns a fresh handler list for an :id route.
func withProjectID(handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{ValidateProjectID(), handler}
}
