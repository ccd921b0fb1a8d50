package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brightfuture/internal/pkg/response"
)

// Handler handles site-wide search requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /api/v1/search
// @Summary Search products and portfolio
// @Tags Search
// @Produce json
// @Param q query string true "Search query, minimum two characters"
// @Success 200 {object} response.Response{data=Results}
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Search(c.Query("q")))
}
