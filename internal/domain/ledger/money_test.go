package ledger

import (
	"math"
	"testing"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		discount     float64
		discountType entity.DiscountType
		wantFinal    float64
		wantSavings  float64
	}{
		{"percentage discount", 9000, 25, entity.DiscountTypePercentage, 6750, 2250},
		{"flat discount", 3000, 500, entity.DiscountTypeFlat, 2500, 500},
		{"empty type is flat", 3000, 500, "", 2500, 500},
		{"no discount", 1200, 0, entity.DiscountTypeFlat, 1200, 0},
		{"flat discount above price is capped", 1000, 1500, entity.DiscountTypeFlat, 0, 1000},
		{"percentage above hundred is capped", 1000, 150, entity.DiscountTypePercentage, 0, 1000},
		{"rounds to cents", 999.99, 33.333, entity.DiscountTypePercentage, 666.66, 333.33},
		{"free package", 0, 10, entity.DiscountTypePercentage, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Evaluate(tt.price, tt.discount, tt.discountType)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFinal, q.Final)
			assert.Equal(t, tt.wantSavings, q.Savings)
		})
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		discount     float64
		discountType entity.DiscountType
	}{
		{"negative price", -1, 0, entity.DiscountTypeFlat},
		{"negative discount", 100, -5, entity.DiscountTypeFlat},
		{"unknown discount type", 100, 5, entity.DiscountType("bogus")},
		{"NaN price", math.NaN(), 0, entity.DiscountTypeFlat},
		{"infinite discount", 100, math.Inf(1), entity.DiscountTypePercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.price, tt.discount, tt.discountType)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestEvaluate_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.Float64Range(0, 1_000_000).Draw(t, "price")
		discountType := rapid.SampledFrom([]entity.DiscountType{
			entity.DiscountTypeFlat,
			entity.DiscountTypePercentage,
		}).Draw(t, "discountType")

		var discount float64
		if discountType == entity.DiscountTypePercentage {
			discount = rapid.Float64Range(0, 200).Draw(t, "percent")
		} else {
			discount = rapid.Float64Range(0, 2_000_000).Draw(t, "flat")
		}

		q, err := Evaluate(price, discount, discountType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if q.Final < 0 {
			t.Fatalf("final %v is negative", q.Final)
		}
		if q.Savings < 0 || q.Savings > q.Price {
			t.Fatalf("savings %v outside [0, %v]", q.Savings, q.Price)
		}

		sum := decimal.NewFromFloat(q.Final).Add(decimal.NewFromFloat(q.Savings))
		if !sum.Equal(decimal.NewFromFloat(q.Price)) {
			t.Fatalf("final %v + savings %v != price %v", q.Final, q.Savings, q.Price)
		}
	})
}

func TestEvaluate_FlatDiscountIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.Float64Range(0, 100_000).Draw(t, "price")
		low := rapid.Float64Range(0, 100_000).Draw(t, "low")
		high := rapid.Float64Range(low, 200_000).Draw(t, "high")

		qLow, err := Evaluate(price, low, entity.DiscountTypeFlat)
		if err != nil {
			t.Fatal(err)
		}
		qHigh, err := Evaluate(price, high, entity.DiscountTypeFlat)
		if err != nil {
			t.Fatal(err)
		}

		if qHigh.Final > qLow.Final {
			t.Fatalf("larger discount %v produced larger final %v > %v", high, qHigh.Final, qLow.Final)
		}
	})
}
