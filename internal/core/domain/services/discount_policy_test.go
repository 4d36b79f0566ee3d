package services_test

import (
	"testing"

	"wholesale/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPolicy_RateFor(t *testing.T) {
	tests := []struct {
		name     string
		articles int
		expected string
	}{
		{"no history", 0, "0"},
		{"below threshold", 42, "0"},
		{"exactly at threshold", 100, "0"},
		{"just above threshold", 101, "0.15"},
		{"far above threshold", 5000, "0.15"},
	}

	policy := services.NewDiscountPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := policy.RateFor(tt.articles)

			assert.True(t, rate.Decimal().Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", rate, tt.expected)
		})
	}
}
