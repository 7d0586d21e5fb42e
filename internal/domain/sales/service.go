package sales

import (
	"context"
	"fmt"
	"time"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/core/tx"
	"khata/internal/core/types"
	"khata/internal/domain/inventory"
	"khata/internal/domain/ledger"
	"khata/pkg/logger"
)

// RecordSaleInput describes one sale request.
type RecordSaleInput struct {
	ItemKind   ItemKind
	ItemID     id.ID
	Quantity   int
	SaleDate   time.Time
	CustomerID *id.ID
	Notes      *string
	Discount   types.Money
}

// Service is the sale transaction orchestrator. It owns the only write
// path that spans inventory, the sale record, and the ledger, and it
// executes the three as one atomic unit.
type Service struct {
	repo      Repository
	inventory *inventory.Service
	ledger    *ledger.Service
	txManager tx.Manager
}

// NewService creates a new sales service.
func NewService(repo Repository, inv *inventory.Service, led *ledger.Service, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		inventory: inv,
		ledger:    led,
		txManager: txManager,
	}
}

// RecordSale executes a sale as a single all-or-nothing unit:
//
//  1. dispatch on item kind and mutate inventory (stock decrement or
//     unit status flip), obtaining the price and name snapshot
//  2. compute subtotal and validate the discount against it
//  3. insert the immutable sale transaction record
//  4. when a customer is linked and the total is positive, post the
//     receivable to the customer's ledger
//
// Any failure rolls back every prior mutation and surfaces the original
// error. A sale with no linked customer never touches the ledger; neither
// does a sale whose discount consumes the whole subtotal.
func (s *Service) RecordSale(ctx context.Context, input RecordSaleInput) (*SaleTransaction, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewValidation("quantity must be a positive integer").
			WithDetail("field", "quantity")
	}
	if input.Discount.IsNegative() {
		return nil, apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}
	if input.ItemKind == KindPhone && input.Quantity != 1 {
		return nil, apperror.NewValidation("quantity must be exactly 1 for a phone sale").
			WithDetail("field", "quantity").
			WithDetail("value", input.Quantity)
	}

	saleDate := input.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now().UTC()
	}

	var sale *SaleTransaction
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		// The customer lookup runs before any mutation so a dangling id
		// surfaces as not-found instead of a foreign key failure on the
		// sale insert.
		if input.CustomerID != nil {
			if err := s.ledger.RequireAccount(ctx, ledger.KindCustomer, *input.CustomerID); err != nil {
				return err
			}
		}

		item, err := s.sellItem(ctx, input, saleDate)
		if err != nil {
			return err
		}

		subtotal := item.UnitPrice.Mul(types.NewMoneyFromInt(int64(input.Quantity)))
		if input.Discount.GreaterThan(subtotal) {
			return apperror.NewValidation("discount exceeds item total").
				WithDetail("discount", input.Discount).
				WithDetail("subtotal", subtotal)
		}
		total := subtotal.Sub(input.Discount)
		if total.IsNegative() {
			// Unreachable given the discount check, guarded anyway.
			return apperror.NewValidation("sale total cannot be negative")
		}

		sale = &SaleTransaction{
			ItemKind:   input.ItemKind,
			ItemName:   item.ItemName,
			Quantity:   input.Quantity,
			UnitPrice:  item.UnitPrice,
			UnitCost:   item.UnitCost,
			Discount:   input.Discount,
			Total:      total,
			CustomerID: input.CustomerID,
			SaleDate:   saleDate,
			Notes:      input.Notes,
			CreatedAt:  time.Now().UTC(),
		}
		switch input.ItemKind {
		case KindProduct:
			itemID := input.ItemID
			sale.ProductID = &itemID
		case KindPhone:
			itemID := input.ItemID
			sale.PhoneID = &itemID
		}

		if err := s.repo.Insert(ctx, sale); err != nil {
			return err
		}

		if input.CustomerID != nil && total.IsPositive() {
			description := fmt.Sprintf("Sale of %s (qty %d)", item.ItemName, input.Quantity)
			if _, err := s.ledger.PostEntry(ctx, ledger.KindCustomer, *input.CustomerID,
				description, total, types.Zero(), saleDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale recorded",
		"sale_id", sale.ID,
		"item_kind", sale.ItemKind,
		"item", sale.ItemName,
		"total", sale.Total,
	)
	return sale, nil
}

// sellItem dispatches on the item kind to the matching inventory branch.
func (s *Service) sellItem(ctx context.Context, input RecordSaleInput, saleDate time.Time) (*inventory.PricedItem, error) {
	switch input.ItemKind {
	case KindProduct:
		return s.inventory.ReserveAndSell(ctx, input.ItemID, input.Quantity)
	case KindPhone:
		return s.inventory.SellUnit(ctx, input.ItemID, saleDate)
	default:
		return nil, apperror.NewValidation("invalid item kind").
			WithDetail("field", "itemKind").
			WithDetail("value", string(input.ItemKind))
	}
}

// GetByID retrieves a single sale transaction.
func (s *Service) GetByID(ctx context.Context, saleID int64) (*SaleTransaction, error) {
	return s.repo.GetByID(ctx, saleID)
}

// List returns sale transactions within the inclusive date range.
func (s *Service) List(ctx context.Context, from, to time.Time) ([]*SaleTransaction, error) {
	return s.repo.List(ctx, from, to)
}
