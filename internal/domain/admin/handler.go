package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brightfuture/internal/pkg/response"
	"brightfuture/internal/pkg/validator"
)

// Handler handles admin auth HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /api/v1/auth/login
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=LoginResponse}
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /api/v1/admin/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context(), c.GetString("admin_username"))
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// AuditLog handles GET /api/v1/admin/auth/logs
func (h *Handler) AuditLog(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	entries, err := h.service.AuditLog(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, AuditResponse{Entries: entries, Total: len(entries)})
}
