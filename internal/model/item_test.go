package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceItemsValueScanRoundTrip(t *testing.T) {
	items := InvoiceItems{
		{Name: "Widget", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(100), TaxPercent: decimal.NewFromInt(18)},
		{Name: "Gadget", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(50), TaxPercent: decimal.Zero},
	}

	value, err := items.Value()
	require.NoError(t, err)

	var decoded InvoiceItems
	require.NoError(t, decoded.Scan(value))

	require.Len(t, decoded, 2)
	assert.Equal(t, "Widget", decoded[0].Name)
	assert.True(t, decoded[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, decoded[1].TaxPercent.IsZero())
}

func TestInvoiceItemsValueNilIsEmptyArray(t *testing.T) {
	var items InvoiceItems

	value, err := items.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(value.([]byte)))
}

func TestInvoiceItemsScanNil(t *testing.T) {
	items := InvoiceItems{{Name: "stale"}}
	require.NoError(t, items.Scan(nil))
	assert.Nil(t, items)
}

func TestInvoiceItemsScanRejectsNonBytes(t *testing.T) {
	var items InvoiceItems
	assert.Error(t, items.Scan(42))
}

func TestOrderItemsValueScanRoundTrip(t *testing.T) {
	items := OrderItems{
		{Name: "Steel Rod", Quantity: decimal.NewFromInt(10), Rate: decimal.RequireFromString("12.5")},
	}

	value, err := items.Value()
	require.NoError(t, err)

	var decoded OrderItems
	require.NoError(t, decoded.Scan(value))

	require.Len(t, decoded, 1)
	assert.Equal(t, "Steel Rod", decoded[0].Name)
	assert.True(t, decoded[0].Rate.Equal(decimal.RequireFromString("12.5")))
}
