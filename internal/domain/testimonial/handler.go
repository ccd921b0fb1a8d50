package testimonial

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

// Approved handles GET /api/v1/testimonials (public)
func (h *Handler) Approved(c *gin.Context) {
	items := h.service.Approved()
	response.Success(c, http.StatusOK, ListResponse{Testimonials: items, Total: len(items)})
}

// List handles GET /api/v1/admin/testimonials
func (h *Handler) List(c *gin.Context) {
	items := h.service.List(Status(c.Query("status")), c.Query("project"), c.Query("search"))
	response.Success(c, http.StatusOK, ListResponse{Testimonials: items, Total: len(items)})
}

// Create handles POST /api/v1/admin/testimonials
func (h *Handler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	t, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

// Update handles PUT /api/v1/admin/testimonials/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// Approve handles POST /api/v1/admin/testimonials/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	t, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), StatusApproved)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// Reject handles POST /api/v1/admin/testimonials/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	t, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), StatusRejected)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// Delete handles DELETE /api/v1/admin/testimonials/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

func (h *Handler) writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTestimonialNotFound):
		response.Error(c, http.StatusNotFound, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
