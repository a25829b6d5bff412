// Package ledger holds the member package ledger rules: package pricing, status
// derivation, aggregate recomputation and the lifecycle operations that mutate a
// member's packages. Everything here is pure; persistence and notifications live
// in the usecase layer.
package ledger

import (
	"math"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the result of applying a discount to a price.
type Quote struct {
	Price        float64             `json:"price"`
	Discount     float64             `json:"discount"`
	DiscountType entity.DiscountType `json:"discountType"`
	Savings      float64             `json:"savings"`
	Final        float64             `json:"final"`
}

// Evaluate applies a flat or percentage discount to price. Savings are capped to
// the price so Final never goes below zero, and Price = Final + Savings always
// holds after rounding to two decimal places. An empty discount type is flat.
func Evaluate(price, discount float64, discountType entity.DiscountType) (Quote, error) {
	if !isFinite(price) || !isFinite(discount) {
		return Quote{}, domainerrors.ErrInvalidInput.WithDetails("price and discount must be finite numbers")
	}
	if price < 0 {
		return Quote{}, domainerrors.ErrInvalidInput.WithDetails("price must not be negative")
	}
	if discount < 0 {
		return Quote{}, domainerrors.ErrInvalidInput.WithDetails("discount must not be negative")
	}

	p := decimal.NewFromFloat(price).Round(2)
	d := decimal.NewFromFloat(discount)

	if discountType == "" {
		discountType = entity.DiscountTypeFlat
	}

	var savings decimal.Decimal
	switch discountType {
	case entity.DiscountTypeFlat:
		savings = d
	case entity.DiscountTypePercentage:
		savings = p.Mul(d).Div(hundred)
	default:
		return Quote{}, domainerrors.ErrInvalidInput.WithDetails("unknown discount type: " + string(discountType))
	}

	savings = savings.Round(2)
	if savings.GreaterThan(p) {
		savings = p
	}

	return Quote{
		Price:        p.InexactFloat64(),
		Discount:     discount,
		DiscountType: discountType,
		Savings:      savings.InexactFloat64(),
		Final:        p.Sub(savings).InexactFloat64(),
	}, nil
}

// Round rounds an amount to two decimal places.
func Round(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// sub returns a-b rounded to two decimal places.
func sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// add returns a+b rounded to two decimal places.
func add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// greaterThan compares two amounts at cent precision.
func greaterThan(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).GreaterThan(decimal.NewFromFloat(b).Round(2))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
