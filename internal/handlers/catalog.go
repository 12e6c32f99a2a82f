// internal/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshchain/pos-backend/internal/services"
	"github.com/freshchain/pos-backend/internal/utils"
)

// CatalogHandler serves the read-only selector endpoints the point-of-sale
// UI uses to render supermarket and product choices.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /supermarkets
func (h *CatalogHandler) GetSupermarkets(c *gin.Context) {
	supermarkets, err := h.catalogService.ListSupermarkets(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	ids := make([]string, 0, len(supermarkets))
	for _, s := range supermarkets {
		ids = append(ids, s.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"supermarkets": ids,
		"count":        len(ids),
	})
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}
