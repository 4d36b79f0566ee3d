package kernel_test

import (
	"testing"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "one unit", value: 1},
		{name: "many units", value: 150},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := kernel.NewQuantity(tt.value)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "is not greater than 0")
				require.ErrorIs(t, q.Validate(), errs.ErrValueIsRequired)
				return
			}

			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, tt.value, q.Int())
		})
	}
}

func TestQuantity_Add(t *testing.T) {
	sum := kernel.MustNewQuantity(5).Add(kernel.MustNewQuantity(6))

	assert.Equal(t, 11, sum.Int())
	require.NoError(t, sum.Validate())
	assert.Equal(t, "11", sum.String())
}

func TestMustNewQuantity_PanicsOnInvalidValue(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewQuantity(0) })
}

func TestQuantity_ZeroValueIsNotConstructed(t *testing.T) {
	var q kernel.Quantity

	assert.Equal(t, kernel.ErrQuantityIsNotConstructed, q.Validate())
}
