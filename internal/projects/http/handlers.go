package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Query("title")))
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	p, err := h.svc.Create(req.Title, req.Owner)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// an unknown project is reported as such whatever the body holds
		if !h.svc.Exists(id) {
			writeError(c, domain.ErrNotFound)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	p, err := h.svc.Update(id, req.Title, req.Owner)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

// errorResponse maps domain errors to a status and payload. Not-found stays a 400.
func errorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusBadRequest, gin.H{"error": msgNotFound}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, gin.H{"error": msgInvalidID}
	default:
		return http.StatusInternalServerError, gin.H{"error": msgInternal}
	}
}
