package order_test

import (
	"testing"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreLine(t *testing.T) {
	t.Run("should restore persisted line", func(t *testing.T) {
		l, err := order.RestoreLine(1, 10, 5, 3)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, 1, l.ID())
		assert.Equal(t, 10, l.OrderNumber())
		assert.Equal(t, 5, l.ProductReference())
		assert.Equal(t, 3, l.Quantity().Int())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		l, err := order.RestoreLine(1, 10, 5, 0)

		assert.Nil(t, l)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should join key errors", func(t *testing.T) {
		_, err := order.RestoreLine(0, 0, 0, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line id is invalid")
		assert.Contains(t, err.Error(), "order number is invalid")
		assert.Contains(t, err.Error(), "product reference is invalid")
	})
}

func TestLine_AssignID(t *testing.T) {
	o := openOrder(t, 10)
	l, err := o.AddLine(5, kernel.MustNewQuantity(2))
	require.NoError(t, err)

	require.NoError(t, l.AssignID(7))
	assert.Equal(t, 7, l.ID())
	require.ErrorIs(t, l.AssignID(8), order.ErrLineIDAlreadyAssigned)
}

func TestLine_ValidateZeroValue(t *testing.T) {
	var l order.Line

	require.ErrorIs(t, l.Validate(), order.ErrLineIsNotConstructed)
}
