package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brightfuture/internal/pkg/response"
	"brightfuture/internal/pkg/validator"
)

// Handler handles catalog HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Description Public product listing with filter and sort controls
// @Tags Catalog
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param search query string false "Substring match on name/description"
// @Param sort query string false "Sort key" Enums(price-low, price-high, popular, newest, name)
// @Success 200 {object} response.Response{data=ListResponse}
// @Router /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	f := Filters{
		Category: Category(c.Query("category")),
		Status:   Status(c.Query("status")),
		Search:   c.Query("search"),
	}

	products := h.service.List(f, c.Query("sort"))
	response.Success(c, http.StatusOK, ListResponse{Products: products, Total: len(products)})
}

// GetProduct handles GET /api/v1/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Featured handles GET /api/v1/products/featured
func (h *Handler) Featured(c *gin.Context) {
	products := h.service.Featured()
	response.Success(c, http.StatusOK, ListResponse{Products: products, Total: len(products)})
}

// CreateProduct handles POST /api/v1/admin/products
// @Summary Create product
// @Tags Admin Catalog
// @Security BearerAuth
// @Success 201 {object} response.Response{data=Product}
// @Router /admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
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

// UpdateProduct handles PUT /api/v1/admin/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
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

// DeleteProduct handles DELETE /api/v1/admin/products/:id. The admin UI
// asks for confirmation before issuing the request; the API treats the
// DELETE itself as the confirmed intent.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

// ToggleFeatured handles POST /api/v1/admin/products/:id/featured
func (h *Handler) ToggleFeatured(c *gin.Context) {
	p, err := h.service.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// BulkEdit handles POST /api/v1/admin/products/bulk
// @Summary Bulk edit products
// @Description Applies one action to a selected id set and returns the affected count
// @Tags Admin Catalog
// @Security BearerAuth
// @Router /admin/products/bulk [post]
func (h *Handler) BulkEdit(c *gin.Context) {
	var req BulkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	updated, err := h.service.BulkEdit(c.Request.Context(), &req)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, BulkEditResponse{Updated: updated})
}

func (h *Handler) writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, ErrInvalidCategory):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_CATEGORY", "Unknown category")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Unknown status")
	case errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidStock), errors.Is(err, ErrTooManyImages):
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidBulkEdit), errors.Is(err, ErrNoSelection):
		response.Error(c, http.StatusBadRequest, "INVALID_BULK_EDIT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
