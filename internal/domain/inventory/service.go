// Package inventory adjusts stock and status of sellable items and
// enforces sellability preconditions. It performs no pricing or ledger
// work; the sales orchestrator composes it.
package inventory

import (
	"context"
	"fmt"
	"time"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/core/types"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/domain/catalogs/product"
)

// PricedItem is what a successful inventory mutation hands back to the
// orchestrator: the price to charge and the name to snapshot.
type PricedItem struct {
	UnitPrice types.Money
	UnitCost  types.Money
	ItemName  string
}

// Sellable is the pick-list of items currently available for sale.
type Sellable struct {
	Products []*product.Product `json:"products"`
	Phones   []*phone.Phone     `json:"phones"`
}

// Service is the inventory mutator.
type Service struct {
	products product.Repository
	phones   phone.Repository
}

// NewService creates a new inventory service.
func NewService(products product.Repository, phones phone.Repository) *Service {
	return &Service{products: products, phones: phones}
}

// ReserveAndSell decrements a bulk product's stock by qty and bumps its
// cumulative sold counter. No side effect on failure.
//
// Must run inside the caller's transaction: the stock check and the
// decrement are a single guarded statement, so two concurrent sales
// cannot both pass on the last units.
func (s *Service) ReserveAndSell(ctx context.Context, productID id.ID, qty int) (*PricedItem, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.StockQuantity < qty {
		return nil, apperror.NewInsufficientStock(productID.String(), qty, p.StockQuantity)
	}
	if !p.SellingPrice.IsPositive() {
		return nil, apperror.NewValidation("product has no valid selling price").
			WithDetail("product_id", productID.String())
	}

	ok, err := s.products.ReduceStock(ctx, productID, qty)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race between the read above and the guarded update.
		return nil, apperror.NewInsufficientStock(productID.String(), qty, p.StockQuantity)
	}

	return &PricedItem{UnitPrice: p.SellingPrice, UnitCost: p.PurchasePrice, ItemName: p.Name}, nil
}

// SellUnit marks a serialized phone unit as sold. The unit must exist,
// be exactly "in stock", and carry a positive sale price.
//
// Must run inside the caller's transaction: the status read and the
// guarded status write stay in one transaction so two concurrent sales of
// the same unit cannot both observe "in stock".
func (s *Service) SellUnit(ctx context.Context, phoneID id.ID, soldAt time.Time) (*PricedItem, error) {
	p, err := s.phones.GetByID(ctx, phoneID)
	if err != nil {
		return nil, err
	}
	if p.Status != phone.StatusInStock {
		return nil, apperror.NewUnavailable(
			fmt.Sprintf("phone is not available for sale (current status: %s)", p.Status),
		).WithDetail("phone_id", phoneID.String()).WithDetail("status", string(p.Status))
	}
	if !p.SalePrice.IsPositive() {
		return nil, apperror.NewValidation("phone has no valid sale price").
			WithDetail("phone_id", phoneID.String())
	}

	ok, err := s.phones.MarkSold(ctx, phoneID, soldAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewUnavailable(
			fmt.Sprintf("phone is not available for sale (current status: %s)", phone.StatusSold),
		).WithDetail("phone_id", phoneID.String())
	}

	return &PricedItem{UnitPrice: p.SalePrice, UnitCost: p.PurchasePrice, ItemName: p.DisplayName()}, nil
}

// ListSellable returns the filtered pick-lists for sale entry: bulk
// products with stock and a price, in-stock phones with a price. Pure
// projection, no mutation.
func (s *Service) ListSellable(ctx context.Context) (*Sellable, error) {
	products, err := s.products.ListSellable(ctx)
	if err != nil {
		return nil, err
	}
	phones, err := s.phones.ListSellable(ctx)
	if err != nil {
		return nil, err
	}
	return &Sellable{Products: products, Phones: phones}, nil
}
