package handlers

import (
	"github.com/gin-gonic/gin"

	"khata/internal/domain/inventory"
)

// InventoryHandler exposes the read side of inventory.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{BaseHandler: NewBaseHandler(), service: service}
}

// Sellable lists products and phones currently available for sale.
func (h *InventoryHandler) Sellable(c *gin.Context) {
	items, err := h.service.ListSellable(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}
