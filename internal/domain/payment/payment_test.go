package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies_Settle(t *testing.T) {
	for _, s := range []Strategy{CardStrategy{}, PayPalStrategy{}, StoreCreditStrategy{}} {
		err := s.Settle(context.Background(), decimal.RequireFromString("230.00"))
		require.NoError(t, err, s.Method())
	}
}

func TestForMethod(t *testing.T) {
	s, err := ForMethod("paypal")
	require.NoError(t, err)
	assert.Equal(t, "paypal", s.Method())
}

func TestForMethod_Unknown(t *testing.T) {
	_, err := ForMethod("barter")
	require.ErrorIs(t, err, ErrUnknownMethod)
}
