package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/burgerbot/internal/server/http/dto"
)

// CatalogHandler serves the static menu.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	items := h.facade.CatalogItems()

	response := make([]dto.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, dto.CatalogItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.StringFixed(2),
			Category:    string(item.Category),
		})
	}

	c.JSON(http.StatusOK, response)
}
