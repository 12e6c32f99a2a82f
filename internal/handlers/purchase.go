// internal/handlers/purchase.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshchain/pos-backend/internal/services"
	"github.com/freshchain/pos-backend/internal/utils"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// POST /purchase
func (h *PurchaseHandler) RegisterPurchase(c *gin.Context) {
	var req services.RegisterPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.BadRequestResponse(c, utils.ValidationMessage(err))
		return
	}

	result, err := h.purchaseService.Register(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"uuid":    result.UUID,
		"total":   result.Total,
		"message": "Purchase recorded",
	})
}
