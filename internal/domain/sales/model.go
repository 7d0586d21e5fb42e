// Package sales records sale transactions: the immutable audit trail of
// every completed sale, and the orchestrator that executes one.
package sales

import (
	"time"

	"khata/internal/core/id"
	"khata/internal/core/types"
)

// ItemKind tags which sellable variant a sale concerns. It is a closed
// set: every dispatch on it handles both members and rejects anything
// else as invalid input.
type ItemKind string

const (
	// KindProduct sells from a bulk product's stock.
	KindProduct ItemKind = "product"

	// KindPhone sells a single serialized unit.
	KindPhone ItemKind = "phone"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	return k == KindProduct || k == KindPhone
}

// SaleTransaction is the immutable record of one completed sale. Prices
// and the item name are snapshotted at sale time; later catalog edits or
// deletions never change past sales.
type SaleTransaction struct {
	// ID is the sequence id, assigned by the store
	ID int64 `db:"id" json:"id"`

	// ItemKind tags the sellable variant
	ItemKind ItemKind `db:"item_kind" json:"itemKind"`

	// ProductID is set for bulk sales (null after product deletion)
	ProductID *id.ID `db:"product_id" json:"productId,omitempty"`

	// PhoneID is set for unit sales (null after phone deletion)
	PhoneID *id.ID `db:"phone_id" json:"phoneId,omitempty"`

	// ItemName is the display name snapshot
	ItemName string `db:"item_name" json:"itemName"`

	// Quantity sold; always 1 for phone sales
	Quantity int `db:"quantity" json:"quantity"`

	// UnitPrice is the per-unit price snapshot
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// UnitCost is the per-unit purchase cost snapshot, taken at sale
	// time so profit reports survive later catalog edits and deletions
	UnitCost types.Money `db:"unit_cost" json:"unitCost"`

	// Discount applied to the whole sale, 0 <= discount <= subtotal
	Discount types.Money `db:"discount" json:"discount"`

	// Total = quantity*unitPrice - discount
	Total types.Money `db:"total" json:"total"`

	// CustomerID links the buyer's account; nil for cash/anonymous sales
	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`

	// SaleDate is the business date of the sale
	SaleDate time.Time `db:"sale_date" json:"saleDate"`

	// Notes is free text
	Notes *string `db:"notes" json:"notes,omitempty"`

	// CreatedAt is the wall-clock insertion time
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
