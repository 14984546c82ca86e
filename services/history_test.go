package services

import (
	"strings"
	"testing"
	"time"

	"go-restaurant-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOrdersAppendsNewEntries(t *testing.T) {
	now := time.Now()
	history := []models.Order{testOrder("a", 10, models.PaymentCash, now)}
	incoming := []models.Order{
		testOrder("b", 20, models.PaymentCard, now),
		testOrder("c", 30, models.PaymentCash, now),
	}

	merged := MergeOrders(history, incoming)
	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].Order_id)
	assert.Equal(t, "b", merged[1].Order_id)
	assert.Equal(t, "c", merged[2].Order_id)
}

func TestMergeOrdersReplacesById(t *testing.T) {
	now := time.Now()
	history := []models.Order{testOrder("a", 10, models.PaymentCash, now)}
	updated := testOrder("a", 99, models.PaymentCard, now)

	merged := MergeOrders(history, []models.Order{updated})
	require.Len(t, merged, 1)
	assert.Equal(t, 99.0, merged[0].Total)
	assert.Equal(t, models.PaymentCard, merged[0].Payment_method)
}

func TestMergeOrdersIsIdempotent(t *testing.T) {
	now := time.Now()
	history := []models.Order{testOrder("a", 10, models.PaymentCash, now)}
	incoming := []models.Order{
		testOrder("a", 10, models.PaymentCash, now),
		testOrder("b", 20, models.PaymentCard, now),
	}

	once := MergeOrders(history, incoming)
	twice := MergeOrders(once, incoming)
	assert.Equal(t, once, twice)
}

func TestMergeOrdersDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	history := []models.Order{testOrder("a", 10, models.PaymentCash, now)}
	MergeOrders(history, []models.Order{testOrder("a", 99, models.PaymentCard, now)})

	assert.Equal(t, 10.0, history[0].Total)
}

func TestExportSalesHistoryToCSV(t *testing.T) {
	day := time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC)
	burger := models.CartItem{Product: testProduct("p1", "Burger", 10, models.CategoryFood), Quantity: 2}
	coffee := models.CartItem{Product: testProduct("p2", "Coffee", 3, models.CategoryDrinks), Quantity: 1}

	orders := []models.Order{
		testOrder("INV-20260831-0001", 23, models.PaymentCash, day, burger, coffee),
		testOrder("INV-20260831-0002", 0, models.PaymentFree, day, coffee),
	}

	csv := ExportSalesHistoryToCSV(orders)
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date;Invoice number;Products;Quantities;Payment method;Total", lines[0])
	assert.Equal(t, "2026-08-31;INV-20260831-0001;Burger, Coffee;2, 1;Cash;23.00", lines[1])
	assert.Equal(t, "2026-08-31;INV-20260831-0002;Coffee;1;Free of charge;0.00", lines[2])
}

func TestExportSalesHistoryToCSVEmpty(t *testing.T) {
	assert.Equal(t, "", ExportSalesHistoryToCSV(nil))
}
