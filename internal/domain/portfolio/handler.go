package portfolio

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brightfuture/internal/pkg/response"
	"brightfuture/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListProjects handles GET /api/v1/portfolio
func (h *Handler) ListProjects(c *gin.Context) {
	projects := h.service.List(Category(c.Query("category")), c.Query("tag"), c.Query("search"))
	response.Success(c, http.StatusOK, ListResponse{Projects: projects, Total: len(projects)})
}

// Highlighted handles GET /api/v1/portfolio/highlighted
func (h *Handler) Highlighted(c *gin.Context) {
	projects := h.service.Highlighted()
	response.Success(c, http.StatusOK, ListResponse{Projects: projects, Total: len(projects)})
}

// GetProject handles GET /api/v1/portfolio/:id
func (h *Handler) GetProject(c *gin.Context) {
	p, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// CreateProject handles POST /api/v1/admin/portfolio
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// UpdateProject handles PUT /api/v1/admin/portfolio/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// DeleteProject handles DELETE /api/v1/admin/portfolio/:id
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Project deleted"})
}

func (h *Handler) writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		response.Error(c, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_CATEGORY", "Unknown project category")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
