package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"khata/internal/core/types"
	"khata/internal/domain/catalogs/partner"
	"khata/internal/domain/ledger"
	"khata/internal/infrastructure/http/v1/dto"
)

// PartnerHandler handles partner catalog endpoints. Responses carry the
// partner's current payable balance.
type PartnerHandler struct {
	*BaseHandler
	service *partner.Service
	ledger  *ledger.Service
}

func NewPartnerHandler(service *partner.Service, ledgerService *ledger.Service) *PartnerHandler {
	return &PartnerHandler{BaseHandler: NewBaseHandler(), service: service, ledger: ledgerService}
}

// partnerView decorates a partner with its payable balance.
type partnerView struct {
	*partner.Partner
	Balance types.Money `json:"balance"`
}

func (h *PartnerHandler) view(ctx context.Context, p *partner.Partner) (*partnerView, error) {
	balance, err := h.ledger.BalanceAsOf(ctx, ledger.KindPartner, p.ID)
	if err != nil {
		return nil, err
	}
	return &partnerView{Partner: p, Balance: balance}, nil
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req dto.PartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := partner.New(req.Name, req.Phone)
	p.Company = req.Company
	p.Address = req.Address

	if err := h.service.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, p.ID.String())
}

func (h *PartnerHandler) Update(c *gin.Context) {
	partnerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.PartnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), partnerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	p.Name = req.Name
	p.Phone = req.Phone
	p.Company = req.Company
	p.Address = req.Address

	if err := h.service.Update(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

func (h *PartnerHandler) Get(c *gin.Context) {
	partnerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), partnerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	view, err := h.view(c.Request.Context(), p)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	partnerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), partnerID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *PartnerHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.Error(c, err)
		return
	}
	views := make([]*partnerView, 0, len(items))
	for _, item := range items {
		view, err := h.view(c.Request.Context(), item)
		if err != nil {
			h.Error(c, err)
			return
		}
		views = append(views, view)
	}
	h.OK(c, dto.NewListResponse(views, len(views)))
}
