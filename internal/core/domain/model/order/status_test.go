package order_test

import (
	"testing"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Open, "Open"},
		{order.Shipped, "Shipped"},
		{order.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Ship(t *testing.T) {
	t.Run("should move open to shipped", func(t *testing.T) {
		next, err := order.Open.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
	})

	t.Run("should refuse shipping twice", func(t *testing.T) {
		next, err := order.Shipped.Ship()

		require.ErrorIs(t, err, order.ErrOrderAlreadyShipped)
		assert.Equal(t, order.Unknown, next)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.Unknown.Ship()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
