// Package payment computes tender outcomes for a cart total. The result
// is derived on every edit of the tendered amount or the total; nothing
// here is stored.
package payment

import (
	"bodegapos/internal/domain"

	"github.com/shopspring/decimal"
)

// Result is the outcome of one payment computation. Exactly one of
// Change/Shortfall is meaningful for cash; both are zero for card.
type Result struct {
	Method      domain.PaymentMethod `json:"method"`
	Tendered    decimal.Decimal      `json:"tendered"`
	Change      decimal.Decimal      `json:"change"`
	Shortfall   decimal.Decimal      `json:"shortfall"`
	Committable bool                 `json:"committable"`
}

// Compute derives the change or shortfall for the given total and tender.
// Card payments are always committable and ignore the tendered amount.
// Amounts are rounded to 2 decimal places.
func Compute(total decimal.Decimal, method domain.PaymentMethod, tendered decimal.Decimal) (Result, error) {
	if !method.Valid() {
		return Result{}, domain.E(domain.KindPaymentMethodNotSelected, "no payment method selected")
	}
	r := Result{Method: method, Change: decimal.Zero, Shortfall: decimal.Zero}
	if method == domain.PaymentCard {
		r.Committable = true
		return r, nil
	}

	r.Tendered = tendered.Round(2)
	if tendered.LessThan(total) {
		r.Shortfall = total.Sub(tendered).Round(2)
		return r, nil
	}
	r.Change = tendered.Sub(total).Round(2)
	r.Committable = true
	return r, nil
}
