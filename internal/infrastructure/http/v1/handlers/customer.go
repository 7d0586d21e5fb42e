package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"khata/internal/core/types"
	"khata/internal/domain/catalogs/customer"
	"khata/internal/domain/ledger"
	"khata/internal/infrastructure/http/v1/dto"
)

// CustomerHandler handles customer catalog endpoints. Responses carry
// the customer's current ledger balance.
type CustomerHandler struct {
	*BaseHandler
	service *customer.Service
	ledger  *ledger.Service
}

func NewCustomerHandler(service *customer.Service, ledgerService *ledger.Service) *CustomerHandler {
	return &CustomerHandler{BaseHandler: NewBaseHandler(), service: service, ledger: ledgerService}
}

// customerView decorates a customer with its receivable balance.
type customerView struct {
	*customer.Customer
	Balance types.Money `json:"balance"`
}

func (h *CustomerHandler) view(ctx context.Context, c *customer.Customer) (*customerView, error) {
	balance, err := h.ledger.BalanceAsOf(ctx, ledger.KindCustomer, c.ID)
	if err != nil {
		return nil, err
	}
	return &customerView{Customer: c, Balance: balance}, nil
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust := customer.New(req.Name, req.Phone)
	cust.Email = req.Email
	cust.Address = req.Address

	if err := h.service.Create(c.Request.Context(), cust); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cust.ID.String())
}

func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cust, err := h.service.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	cust.Name = req.Name
	cust.Phone = req.Phone
	cust.Email = req.Email
	cust.Address = req.Address

	if err := h.service.Update(c.Request.Context(), cust); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cust)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	cust, err := h.service.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	view, err := h.view(c.Request.Context(), cust)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), customerID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.Error(c, err)
		return
	}
	views := make([]*customerView, 0, len(items))
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
