// Package ledger maintains the append-only running-balance ledgers kept
// per account (customer or partner).
//
// Entries are immutable once written: no update, no delete, ever.
// Corrections are made with an opposing entry, never an edit. The running
// balance is computed at write time and persisted on each entry, so the
// current balance of an account is a single-row read of its latest entry.
package ledger

import (
	"khata/internal/core/id"
	"khata/internal/core/types"
	"time"
)

// AccountKind selects which ledger an entry belongs to. The sign
// convention of an entry depends on it.
type AccountKind string

const (
	// KindCustomer: debit increases what the customer owes the business
	// (receivable), credit records a payment received.
	KindCustomer AccountKind = "customer"

	// KindPartner: credit increases what the business owes the partner
	// (payable), debit records a payment made.
	KindPartner AccountKind = "partner"
)

// Valid reports whether k is a known account kind.
func (k AccountKind) Valid() bool {
	return k == KindCustomer || k == KindPartner
}

// Entry is one signed, balance-affecting, immutable posting on an
// account's running history.
type Entry struct {
	// ID is the sequence id, assigned by the store. For a given account,
	// ids are strictly increasing in posting order.
	ID int64 `db:"id" json:"id"`

	// AccountID references the owning customer or partner
	AccountID id.ID `db:"account_id" json:"accountId"`

	// EntryDate is when the entry takes effect
	EntryDate time.Time `db:"entry_date" json:"entryDate"`

	// Description is free text referencing the cause (sale, payment, ...)
	Description string `db:"description" json:"description"`

	// Debit amount, >= 0
	Debit types.Money `db:"debit" json:"debit"`

	// Credit amount, >= 0
	Credit types.Money `db:"credit" json:"credit"`

	// Balance is the running account balance as of and including this
	// entry. Authoritative and persisted, not recomputed on read.
	Balance types.Money `db:"balance" json:"balance"`
}

// SignedDelta returns the balance change this entry causes for the given
// account kind.
func (e *Entry) SignedDelta(kind AccountKind) types.Money {
	if kind == KindPartner {
		return e.Credit.Sub(e.Debit)
	}
	return e.Debit.Sub(e.Credit)
}
