package services

import (
	"wholesale/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	// LoyaltyThreshold is the number of articles a client must have ordered,
	// strictly exceeded, before new orders get the loyalty discount.
	LoyaltyThreshold = 100
)

// DiscountPolicy grants the loyalty rate to clients whose historical article
// count is above the threshold.
//
// Example:
//
//	policy := services.NewDiscountPolicy()
//	rate := policy.RateFor(101) // 0.15
//	rate = policy.RateFor(100)  // 0
type DiscountPolicy struct {
	threshold int
	rate      kernel.DiscountRate
}

func NewDiscountPolicy() DiscountPolicy {
	// 0.15 is within [0, 1].
	rate, _ := kernel.NewDiscountRate(decimal.New(15, -2))
	return DiscountPolicy{
		threshold: LoyaltyThreshold,
		rate:      rate,
	}
}

// RateFor returns the discount for a new order given the total quantity of
// every line the client ever ordered, shipped or not.
func (p DiscountPolicy) RateFor(historicalArticles int) kernel.DiscountRate {
	if historicalArticles > p.threshold {
		return p.rate
	}
	return kernel.NoDiscount()
}
