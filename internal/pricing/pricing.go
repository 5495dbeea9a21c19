// Package pricing derives subtotal, tax and total amounts from cart lines.
package pricing

import (
	"github.com/Shyam-2315/Grocery-Store/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat sales tax applied when no rate is configured.
const DefaultTaxRate = 0.05

// ComputeTotals sums the cart lines at full precision and rounds only the
// final amounts to two decimal places. Pure function: no state, no I/O.
func ComputeTotals(lines []domain.CartLine, taxRate float64) domain.Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		lineTotal := decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}

	tax := subtotal.Mul(decimal.NewFromFloat(taxRate))
	total := subtotal.Add(tax)

	return domain.Totals{
		Subtotal: round2(subtotal),
		Tax:      round2(tax),
		Total:    round2(total),
	}
}

// LineTotal returns the display amount for a single line.
func LineTotal(line domain.CartLine) float64 {
	t := decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Quantity)))
	return round2(t)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
