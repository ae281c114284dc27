package payment

import (
	"testing"

	"bodegapos/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeCashExact(t *testing.T) {
	r, err := Compute(amount("150.00"), domain.PaymentCash, amount("150.00"))
	require.NoError(t, err)

	assert.True(t, r.Committable)
	assert.True(t, r.Change.IsZero())
	assert.True(t, r.Shortfall.IsZero())
}

func TestComputeCashChange(t *testing.T) {
	r, err := Compute(amount("150.00"), domain.PaymentCash, amount("200.00"))
	require.NoError(t, err)

	assert.True(t, r.Committable)
	assert.Equal(t, "50.00", r.Change.StringFixed(2))
	assert.True(t, r.Shortfall.IsZero())
}

func TestComputeCashShortfall(t *testing.T) {
	r, err := Compute(amount("150.00"), domain.PaymentCash, amount("100.00"))
	require.NoError(t, err)

	assert.False(t, r.Committable)
	assert.Equal(t, "50.00", r.Shortfall.StringFixed(2))
	assert.True(t, r.Change.IsZero())
}

func TestComputeCashRoundsToCents(t *testing.T) {
	r, err := Compute(amount("10.00"), domain.PaymentCash, amount("10.999"))
	require.NoError(t, err)

	assert.True(t, r.Committable)
	assert.Equal(t, "1.00", r.Change.StringFixed(2))
}

func TestComputeCardAlwaysCommittable(t *testing.T) {
	// Card charges the exact total; the tendered field is irrelevant.
	r, err := Compute(amount("150.00"), domain.PaymentCard, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, r.Committable)
	assert.True(t, r.Change.IsZero())
	assert.True(t, r.Shortfall.IsZero())
}

func TestComputeRejectsUnknownMethod(t *testing.T) {
	_, err := Compute(amount("150.00"), domain.PaymentMethod("CHEQUE"), amount("150.00"))
	assert.True(t, domain.IsKind(err, domain.KindPaymentMethodNotSelected))

	_, err = Compute(amount("150.00"), domain.PaymentMethod(""), amount("150.00"))
	assert.True(t, domain.IsKind(err, domain.KindPaymentMethodNotSelected))
}
