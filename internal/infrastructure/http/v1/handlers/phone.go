package handlers

import (
	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/infrastructure/http/v1/dto"
)

// PhoneHandler handles phone unit catalog endpoints.
type PhoneHandler struct {
	*BaseHandler
	service *phone.Service
}

func NewPhoneHandler(service *phone.Service) *PhoneHandler {
	return &PhoneHandler{BaseHandler: NewBaseHandler(), service: service}
}

func (h *PhoneHandler) apply(c *gin.Context, p *phone.Phone, req *dto.PhoneRequest) bool {
	var supplierID *id.ID
	if req.SupplierID != nil && *req.SupplierID != "" {
		parsed, err := id.Parse(*req.SupplierID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid id").WithDetail("supplierId", *req.SupplierID))
			return false
		}
		supplierID = &parsed
	}

	p.Brand = req.Brand
	p.Model = req.Model
	p.IMEI = req.IMEI
	p.SupplierID = supplierID
	p.PurchasePrice = req.PurchasePrice
	p.SalePrice = req.SalePrice
	return true
}

func (h *PhoneHandler) Create(c *gin.Context) {
	var req dto.PhoneRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := phone.New(req.Brand, req.Model, req.IMEI, req.SalePrice)
	if !h.apply(c, p, &req) {
		return
	}

	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, p.ID.String())
}

func (h *PhoneHandler) Update(c *gin.Context) {
	phoneID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.PhoneRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), phoneID)
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

func (h *PhoneHandler) Get(c *gin.Context) {
	phoneID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), phoneID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

func (h *PhoneHandler) Delete(c *gin.Context) {
	phoneID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), phoneID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *PhoneHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items, len(items)))
}
