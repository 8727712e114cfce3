package service

import (
	"github.com/shopspring/decimal"

	"github.com/liveartfest/ticketing/internal/models"
)

// Ontario HST applied to every cart.
var taxRate = decimal.NewFromFloat(0.13)

// Totals carries the three cart figures. Each stage is independently rounded
// up to the cent, and each later stage is computed from the already-rounded
// earlier one; totals produced any other way will not match historic receipts.
type Totals struct {
	SubTotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func computeTotals(tickets []models.Ticket) Totals {
	sum := decimal.Zero
	for _, t := range tickets {
		if t.TicketClass != nil {
			sum = sum.Add(decimal.NewFromFloat(t.TicketClass.Price))
		}
	}

	subTotal := sum.RoundCeil(2)
	tax := taxRate.Mul(subTotal).RoundCeil(2)
	total := subTotal.Add(tax).RoundCeil(2)

	return Totals{SubTotal: subTotal, Tax: tax, Total: total}
}

// AmountMinorUnits returns the total in cents, the unit payment gateways bill in.
func (t Totals) AmountMinorUnits() int64 {
	return t.Total.Mul(decimal.NewFromInt(100)).IntPart()
}
