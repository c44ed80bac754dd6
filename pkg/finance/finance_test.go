package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(qty, rate, tax int64) Line {
	return Line{
		Quantity:   decimal.NewFromInt(qty),
		Rate:       decimal.NewFromInt(rate),
		TaxPercent: decimal.NewFromInt(tax),
	}
}

func TestItemTotal(t *testing.T) {
	assert.True(t, decimal.NewFromInt(200).Equal(ItemTotal(line(2, 100, 18))))
}

func TestItemTotalWithTax(t *testing.T) {
	// 2 x 100 at 18% = 236
	assert.True(t, decimal.NewFromInt(236).Equal(ItemTotalWithTax(line(2, 100, 18))))
	// no tax leaves the total untouched
	assert.True(t, decimal.NewFromInt(50).Equal(ItemTotalWithTax(line(1, 50, 0))))
}

func TestTotals(t *testing.T) {
	subtotal, tax, total := Totals([]Line{
		line(2, 100, 18),
		line(1, 50, 0),
	})

	assert.True(t, decimal.NewFromInt(250).Equal(subtotal), "subtotal = %s", subtotal)
	assert.True(t, decimal.NewFromInt(36).Equal(tax), "tax = %s", tax)
	assert.True(t, decimal.NewFromInt(286).Equal(total), "total = %s", total)
}

func TestTotalsEmpty(t *testing.T) {
	subtotal, tax, total := Totals(nil)

	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

func TestTotalsFractionalQuantity(t *testing.T) {
	subtotal, _, _ := Totals([]Line{{
		Quantity: decimal.RequireFromString("2.5"),
		Rate:     decimal.NewFromInt(10),
	}})
	assert.True(t, decimal.NewFromInt(25).Equal(subtotal))
}

func TestDefaultInvoiceDueDate(t *testing.T) {
	invoiceDate := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), DefaultInvoiceDueDate(invoiceDate))
}

func TestNextMonthDueDate(t *testing.T) {
	billDate := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC), NextMonthDueDate(billDate))
}

func TestNextMonthDueDateRollsOverMonthEnd(t *testing.T) {
	// Jan 31 + one month normalizes past the end of February.
	billDate := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), NextMonthDueDate(billDate))
}
