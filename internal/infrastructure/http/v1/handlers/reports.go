package handlers

import (
	"github.com/gin-gonic/gin"

	"khata/internal/domain/reports"
	"khata/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

func NewReportsHandler(service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: NewBaseHandler(), service: service}
}

func (h *ReportsHandler) Profit(c *gin.Context) {
	var q dto.ReportRangeQuery
	if !h.BindQuery(c, &q) {
		return
	}
	summary, err := h.service.ProfitSummary(c.Request.Context(), q.From, q.To)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

func (h *ReportsHandler) Debtors(c *gin.Context) {
	rows, err := h.service.Debtors(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(rows, len(rows)))
}

func (h *ReportsHandler) Creditors(c *gin.Context) {
	rows, err := h.service.Creditors(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(rows, len(rows)))
}

func (h *ReportsHandler) TopCustomers(c *gin.Context) {
	var q dto.TopQuery
	if !h.BindQuery(c, &q) {
		return
	}
	rows, err := h.service.TopCustomers(c.Request.Context(), q.From, q.To, q.Limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(rows, len(rows)))
}

func (h *ReportsHandler) TopPartners(c *gin.Context) {
	var q dto.TopQuery
	if !h.BindQuery(c, &q) {
		return
	}
	rows, err := h.service.TopPartners(c.Request.Context(), q.From, q.To, q.Limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(rows, len(rows)))
}

func (h *ReportsHandler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, d)
}
