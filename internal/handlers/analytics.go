// internal/handlers/analytics.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshchain/pos-backend/internal/repository"
	"github.com/freshchain/pos-backend/internal/services"
	"github.com/freshchain/pos-backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GET /unique-customers
func (h *AnalyticsHandler) GetUniqueCustomers(c *gin.Context) {
	count, err := h.analyticsService.UniqueCustomers(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unique_customers": count,
		"description":      "Total number of unique customers who made purchases in the chain",
	})
}

// GET /loyal-customers
func (h *AnalyticsHandler) GetLoyalCustomers(c *gin.Context) {
	customers, err := h.analyticsService.LoyalCustomers(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	if customers == nil {
		customers = []repository.LoyalCustomer{}
	}

	c.JSON(http.StatusOK, gin.H{
		"loyal_customers": customers,
		"criteria":        "Customers with 3+ purchases",
		"count":           len(customers),
	})
}

// GET /top-products
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	products, err := h.analyticsService.TopProducts(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	if products == nil {
		products = []repository.ProductSales{}
	}

	c.JSON(http.StatusOK, gin.H{
		"top_products": products,
		"description":  "Top 3 best-selling products of all time (including ties in popularity)",
		"count":        len(products),
	})
}
