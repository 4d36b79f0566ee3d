package kernel_test

import (
	"testing"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscountRate(t *testing.T) {
	t.Run("accepts bounds and fractions", func(t *testing.T) {
		for _, v := range []string{"0", "0.15", "1"} {
			rate, err := kernel.NewDiscountRate(decimal.RequireFromString(v))

			require.NoError(t, err)
			assert.True(t, rate.Decimal().Equal(decimal.RequireFromString(v)))
		}
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := kernel.NewDiscountRate(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects rate above one", func(t *testing.T) {
		_, err := kernel.NewDiscountRate(decimal.RequireFromString("1.5"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDiscountRate_ZeroValueMeansNoDiscount(t *testing.T) {
	var rate kernel.DiscountRate

	assert.True(t, rate.IsZero())
	assert.True(t, rate.Equal(kernel.NoDiscount()))
	assert.Equal(t, "0", kernel.NoDiscount().String())
}

func TestDiscountRate_EqualIgnoresScale(t *testing.T) {
	a, _ := kernel.NewDiscountRate(decimal.RequireFromString("0.15"))
	b, _ := kernel.NewDiscountRate(decimal.RequireFromString("0.150"))

	assert.True(t, a.Equal(b))
}
