package handlers

import (
	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/domain/catalogs/product"
	"khata/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

func NewProductHandler(service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(), service: service}
}

// parseOptionalID parses an optional string reference into an ID.
func (h *ProductHandler) parseOptionalID(c *gin.Context, field string, value *string) (*id.ID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	parsed, err := id.Parse(*value)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail(field, *value))
		return nil, false
	}
	return &parsed, true
}

func (h *ProductHandler) apply(c *gin.Context, p *product.Product, req *dto.ProductRequest) bool {
	categoryID, ok := h.parseOptionalID(c, "categoryId", req.CategoryID)
	if !ok {
		return false
	}
	supplierID, ok := h.parseOptionalID(c, "supplierId", req.SupplierID)
	if !ok {
		return false
	}

	p.Name = req.Name
	p.CategoryID = categoryID
	p.SupplierID = supplierID
	p.PurchasePrice = req.PurchasePrice
	p.SellingPrice = req.SellingPrice
	p.StockQuantity = req.StockQuantity
	return true
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := product.New(req.Name, req.SellingPrice, req.StockQuantity)
	if !h.apply(c, p, &req) {
		return
	}

	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, p.ID.String())
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !h.apply(c, p, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items, len(items)))
}
