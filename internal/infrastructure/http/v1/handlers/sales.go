package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/domain/sales"
	"khata/internal/infrastructure/http/v1/dto"
)

// SalesHandler handles sale transaction endpoints.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
	convert DateConverter
}

func NewSalesHandler(service *sales.Service, convert DateConverter) *SalesHandler {
	return &SalesHandler{BaseHandler: NewBaseHandler(), service: service, convert: convert}
}

// Record executes one atomic sale.
func (h *SalesHandler) Record(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	itemID, err := id.Parse(req.ItemID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("itemId", req.ItemID))
		return
	}

	input := sales.RecordSaleInput{
		ItemKind: sales.ItemKind(req.ItemKind),
		ItemID:   itemID,
		Quantity: req.Quantity,
		Discount: req.Discount,
		Notes:    req.Notes,
	}

	if req.CustomerID != nil && *req.CustomerID != "" {
		customerID, err := id.Parse(*req.CustomerID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid id").WithDetail("customerId", *req.CustomerID))
			return
		}
		input.CustomerID = &customerID
	}

	if req.SaleDate != "" {
		saleDate, err := h.convert(req.SaleDate)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid sale date").WithDetail("saleDate", req.SaleDate))
			return
		}
		input.SaleDate = saleDate
	}

	sale, err := h.service.RecordSale(c.Request.Context(), input)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sale)
}

func (h *SalesHandler) Get(c *gin.Context) {
	saleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("id", c.Param("id")))
		return
	}
	sale, err := h.service.GetByID(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, sale)
}

// List returns sales within an inclusive Bikram Sambat date range.
func (h *SalesHandler) List(c *gin.Context) {
	var q dto.SaleRangeQuery
	if !h.BindQuery(c, &q) {
		return
	}

	from, err := h.convert(q.From)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date range").WithDetail("from", q.From))
		return
	}
	to, err := h.convert(q.To)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date range").WithDetail("to", q.To))
		return
	}
	// Inclusive end of day.
	to = to.AddDate(0, 0, 1).Add(-1)

	items, err := h.service.List(c.Request.Context(), from, to)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items, len(items)))
}
