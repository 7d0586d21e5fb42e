package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/domain/ledger"
	"khata/internal/infrastructure/http/v1/dto"
)

// DateConverter turns a Bikram Sambat date string (YYYY-MM-DD) into the
// Gregorian instant the store keeps.
type DateConverter func(date string) (time.Time, error)

// LedgerHandler handles ledger endpoints for one account kind. It is
// mounted twice, under the customer and partner route groups.
type LedgerHandler struct {
	*BaseHandler
	service *ledger.Service
	kind    ledger.AccountKind
	convert DateConverter
}

func NewLedgerHandler(service *ledger.Service, kind ledger.AccountKind, convert DateConverter) *LedgerHandler {
	return &LedgerHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
		kind:        kind,
		convert:     convert,
	}
}

// PostEntry appends a manual entry to the account's ledger.
func (h *LedgerHandler) PostEntry(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.ManualEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entryDate, err := h.convert(req.EntryDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid entry date").WithDetail("entryDate", req.EntryDate))
		return
	}

	entry, err := h.service.PostManualEntry(c.Request.Context(), h.kind, accountID,
		req.Description, req.Debit, req.Credit, entryDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entry)
}

// Entries lists the account's full ledger, oldest first.
func (h *LedgerHandler) Entries(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	entries, err := h.service.EntriesFor(c.Request.Context(), h.kind, accountID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(entries, len(entries)))
}

// Balance returns the account's current running balance.
func (h *LedgerHandler) Balance(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	balance, err := h.service.BalanceAsOf(c.Request.Context(), h.kind, accountID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.BalanceResponse{AccountID: accountID.String(), Balance: balance})
}
