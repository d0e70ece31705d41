package http

import "github.com/GoSim-25-26J-441/projects-api/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type projectReq struct {
	Title string `json:"title"`
	Owner string `json:"owner"`
}

const (
	msgInvalidID   = "Invalid project ID."
	msgNotFound    = "Project not found."
	msgInvalidBody = "Invalid request body."
	msgInternal    = "internal error"
)
