package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Line is the quantity/rate/tax triple all derived totals are computed
// from. TaxPercent is zero for purchase-order and bill lines.
type Line struct {
	Quantity   decimal.Decimal
	Rate       decimal.Decimal
	TaxPercent decimal.Decimal
}

// ItemTotal returns quantity x rate for one line.
func ItemTotal(l Line) decimal.Decimal {
	return l.Quantity.Mul(l.Rate)
}

// ItemTax returns the tax portion of one line: quantity x rate x tax/100.
func ItemTax(l Line) decimal.Decimal {
	return ItemTotal(l).Mul(l.TaxPercent).Div(oneHundred)
}

// ItemTotalWithTax returns the tax-inclusive line total.
func ItemTotalWithTax(l Line) decimal.Decimal {
	return ItemTotal(l).Add(ItemTax(l))
}

// Totals returns subtotal, total tax and total amount for a document:
// subtotal = sum(qty x rate), tax = sum(qty x rate x taxPercent/100),
// total = subtotal + tax.
func Totals(lines []Line) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	tax = decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(ItemTotal(l))
		tax = tax.Add(ItemTax(l))
	}
	return subtotal, tax, subtotal.Add(tax)
}

// DefaultInvoiceDueDate is the invoice date plus 30 calendar days, used
// when the caller does not override the due date.
func DefaultInvoiceDueDate(invoiceDate time.Time) time.Time {
	return invoiceDate.AddDate(0, 0, 30)
}

// NextMonthDueDate advances a bill date by one calendar month. Month-end
// overflow rolls forward (Jan 31 becomes Mar 2/3), matching time.AddDate.
func NextMonthDueDate(billDate time.Time) time.Time {
	return billDate.AddDate(0, 1, 0)
}
