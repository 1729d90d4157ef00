package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/pos-billing/internal/cart"
	"github.com/noah-isme/pos-billing/internal/catalog"
)

var hundred = decimal.NewFromInt(100)

// Line is one priced cart entry.
type Line struct {
	ItemName     string
	Quantity     int
	UnitPrice    decimal.Decimal
	PromotedUnit decimal.Decimal
	LineTotal    decimal.Decimal
}

// Quote aggregates computed pricing components for the current cart.
type Quote struct {
	Lines          []Line
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	Payable        decimal.Decimal
}

// EffectiveUnitPrice applies a promotion rule to a unit price. A
// percentage promotion over 100% clamps to zero instead of going
// negative.
func EffectiveUnitPrice(price decimal.Decimal, promo *catalog.Promotion) decimal.Decimal {
	if promo == nil {
		return price
	}
	var effective decimal.Decimal
	switch promo.Kind {
	case catalog.PromotionPercentage:
		effective = price.Mul(decimal.NewFromInt(1).Sub(promo.Value.Div(hundred)))
	case catalog.PromotionFixed:
		effective = price.Sub(promo.Value)
	default:
		return price
	}
	if effective.IsNegative() {
		return decimal.Zero
	}
	return effective
}

// Engine computes cart totals. The cart-level discount rate is fixed
// at construction; it applies on top of per-item promotions.
type Engine struct {
	Catalog      *catalog.Service
	DiscountRate decimal.Decimal
}

// Quote prices the cart lines in insertion order. An empty cart
// yields an all-zero quote; callers on the save path must check for
// emptiness before rendering an invoice.
func (e *Engine) Quote(entries []cart.Line) (Quote, error) {
	q := Quote{
		Subtotal:       decimal.Zero,
		DiscountRate:   e.DiscountRate,
		DiscountAmount: decimal.Zero,
		Payable:        decimal.Zero,
	}
	for _, entry := range entries {
		item, err := e.Catalog.Lookup(entry.ItemName)
		if err != nil {
			return Quote{}, err
		}
		var promo *catalog.Promotion
		if rule, ok := e.Catalog.PromotionFor(entry.ItemName); ok {
			promo = &rule
		}
		unit := EffectiveUnitPrice(item.Price, promo)
		total := unit.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		q.Lines = append(q.Lines, Line{
			ItemName:     entry.ItemName,
			Quantity:     entry.Quantity,
			UnitPrice:    item.Price,
			PromotedUnit: unit,
			LineTotal:    total,
		})
		q.Subtotal = q.Subtotal.Add(total)
	}
	q.DiscountAmount = q.Subtotal.Mul(e.DiscountRate).Div(hundred)
	q.Payable = q.Subtotal.Sub(q.DiscountAmount)
	return q, nil
}
