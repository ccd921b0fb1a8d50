package estimate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brightfuture/internal/pkg/response"
	"brightfuture/internal/pkg/validator"
)

// Handler handles estimate HTTP requests.
type Handler struct {
	products ProductSource
}

func NewHandler(products ProductSource) *Handler {
	return &Handler{products: products}
}

// Quote handles POST /api/v1/estimate
// @Summary Calculate a project estimate
// @Description Prices a project from the fixed rate tables and suggests matching products
// @Tags Estimate
// @Accept json
// @Produce json
// @Success 200 {object} response.Response{data=QuoteResponse}
// @Router /estimate [post]
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	quote, err := Calculate(Input{
		ProjectType: req.ProjectType,
		Grade:       req.Grade,
		Area:        req.Area,
		Extras:      req.Extras,
	})
	if err != nil {
		h.writeDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, QuoteResponse{
		Quote:           quote,
		Recommendations: Recommend(h.products, req.ProjectType),
	})
}

func (h *Handler) writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownProjectType), errors.Is(err, ErrUnknownGrade), errors.Is(err, ErrUnknownExtra):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_OPTION", err.Error())
	case errors.Is(err, ErrAreaTooSmall):
		response.Error(c, http.StatusUnprocessableEntity, "AREA_TOO_SMALL", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
