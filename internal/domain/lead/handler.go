package lead

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brightfuture/internal/pkg/response"
)

// ProductLookup resolves a catalog product name for contact prefill.
type ProductLookup interface {
	ProductName(ctx context.Context, id string) (string, bool)
}

// Handler handles inquiry HTTP requests.
type Handler struct {
	service  *Service
	products ProductLookup
}

func NewHandler(service *Service, products ProductLookup) *Handler {
	return &Handler{service: service, products: products}
}

// Capture handles POST /api/v1/contact
// @Summary Submit an inquiry
// @Description Relays the contact form, stores the lead and fans out notifications
// @Tags Contact
// @Accept json
// @Produce json
// @Success 201 {object} response.Response{data=CaptureResponse}
// @Router /contact [post]
func (h *Handler) Capture(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	foldPrefill(req.Fields, c.Query("product"), c.Query("price"), c.Query("category"))

	lead, err := h.service.Capture(c.Request.Context(), req.Fields, req.Page)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, CaptureResponse{
		ID:        lead.ID,
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
	})
}

// foldPrefill appends catalog page context carried in query parameters
// to the inquiry message, the way the contact form prefills itself when
// opened from a product page.
func foldPrefill(fields map[string]string, product, price, category string) {
	if fields == nil || (product == "" && price == "" && category == "") {
		return
	}
	var parts []string
	if product != "" {
		parts = append(parts, "제품: "+product)
		if fields["product"] == "" {
			fields["product"] = product
		}
	}
	if price != "" {
		parts = append(parts, "가격: "+price)
	}
	if category != "" {
		parts = append(parts, "카테고리: "+category)
	}
	note := strings.Join(parts, " / ")
	if fields["message"] == "" {
		fields["message"] = note
		return
	}
	fields["message"] = note + "\n" + fields["message"]
}

// Prefill handles GET /api/v1/contact/prefill. Catalog pages link here
// with a product id so the form opens with a ready-made message.
func (h *Handler) Prefill(c *gin.Context) {
	id := c.Query("product")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_PRODUCT", "product query parameter is required")
		return
	}
	name, ok := h.products.ProductName(c.Request.Context(), id)
	if !ok {
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	response.Success(c, http.StatusOK, PrefillResponse{
		Product: name,
		Message: fmt.Sprintf("[%s] 제품에 대해 문의드립니다.", name),
	})
}

// List handles GET /api/v1/admin/leads
func (h *Handler) List(c *gin.Context) {
	f := Filters{
		Status:      Status(c.Query("status")),
		ProjectType: c.Query("projectType"),
		Search:      c.Query("search"),
	}

	leads, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: len(leads)})
}

// Get handles GET /api/v1/admin/leads/:id
func (h *Handler) Get(c *gin.Context) {
	lead, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

// UpdateStatus handles PUT /api/v1/admin/leads/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Unknown lead status")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), status, req.Notes); err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Lead updated"})
}

// MarkRead handles POST /api/v1/admin/leads/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Lead marked read"})
}

// Delete handles DELETE /api/v1/admin/leads/:id. The lead is removed
// from the remote store before anything is reported deleted.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Lead deleted"})
}

func (h *Handler) writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
	case errors.Is(err, ErrMissingName), errors.Is(err, ErrMissingContact):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Unknown lead status")
	case errors.Is(err, ErrRelayNotConfigured):
		response.Error(c, http.StatusServiceUnavailable, "RELAY_NOT_CONFIGURED", err.Error())
	case errors.Is(err, ErrRelayRejected):
		response.Error(c, http.StatusBadGateway, "RELAY_REJECTED", err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
