package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_NegativeAmount(t *testing.T) {
	_, err := NewOrder("ord-1", decimal.RequireFromString("-0.01"))
	require.ErrorIs(t, err, ErrNegativeAmount)
}

func TestOrder_PriceIsBaseAmount(t *testing.T) {
	ord, err := NewOrder("ord-1", decimal.RequireFromString("200.00"))
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("200.00").Equal(ord.Price()))
	assert.True(t, ord.BaseAmount().Equal(ord.Price()))
	assert.Equal(t, "ord-1", ord.ID())
}

func TestOrder_ZeroAmount(t *testing.T) {
	ord, err := NewOrder("ord-1", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(ord.Price()))
}
