package services

import (
	"testing"
	"time"

	"go-restaurant-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id string, total float64, method models.PaymentMethod, date time.Time, items ...models.CartItem) models.Order {
	return models.Order{
		Order_id:       id,
		Items:          items,
		Total:          total,
		Payment_method: method,
		Order_date:     date,
		Completed:      true,
	}
}

func TestFilterOrdersByDateRangeInclusiveBoundaries(t *testing.T) {
	loc := time.UTC
	endOfDay := time.Date(2026, 8, 30, 23, 59, 59, 999000000, loc)
	startOfNextDay := time.Date(2026, 8, 31, 0, 0, 0, 0, loc)
	startOfFirstDay := time.Date(2026, 8, 29, 0, 0, 0, 0, loc)
	beforeFirstDay := startOfFirstDay.Add(-time.Millisecond)

	orders := []models.Order{
		testOrder("a", 10, models.PaymentCash, endOfDay),
		testOrder("b", 20, models.PaymentCash, startOfNextDay),
		testOrder("c", 30, models.PaymentCash, startOfFirstDay),
		testOrder("d", 40, models.PaymentCash, beforeFirstDay),
	}

	start := time.Date(2026, 8, 29, 14, 30, 0, 0, loc)
	end := time.Date(2026, 8, 30, 9, 15, 0, 0, loc)
	filtered := FilterOrdersByDateRange(orders, start, end)

	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Order_id)
	assert.Equal(t, "c", filtered[1].Order_id)
}

func TestPaymentMethodStats(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		testOrder("a", 10, models.PaymentCash, now),
		testOrder("b", 20, models.PaymentCash, now),
		testOrder("c", 15, models.PaymentCard, now),
		testOrder("d", 0, models.PaymentFree, now),
	}

	stats := PaymentMethodStats(orders)
	assert.Equal(t, models.PaymentStat{Count: 2, Total: 30}, stats[models.PaymentCash])
	assert.Equal(t, models.PaymentStat{Count: 1, Total: 15}, stats[models.PaymentCard])
	assert.Equal(t, models.PaymentStat{Count: 1, Total: 0}, stats[models.PaymentFree])
	assert.Equal(t, models.PaymentStat{}, stats[models.PaymentRoomTransfer])
	assert.Equal(t, models.PaymentStat{}, stats[models.PaymentOther])
}

func TestProductCategoryStats(t *testing.T) {
	now := time.Now()
	burger := models.CartItem{Product: testProduct("p1", "Burger", 10, models.CategoryFood), Quantity: 2}
	coffee := models.CartItem{Product: testProduct("p2", "Coffee", 3, models.CategoryDrinks), Quantity: 1}
	cigar := models.CartItem{Product: testProduct("p3", "Cigar", 8, "tobacco"), Quantity: 1}

	orders := []models.Order{
		testOrder("a", 23, models.PaymentCash, now, burger, coffee),
		testOrder("b", 8, models.PaymentCard, now, cigar),
	}

	stats := ProductCategoryStats(orders)
	assert.Equal(t, models.CategoryStat{Count: 2, Total: 20}, stats[models.CategoryFood])
	assert.Equal(t, models.CategoryStat{Count: 1, Total: 3}, stats[models.CategoryDrinks])
	assert.Equal(t, models.CategoryStat{Count: 1, Total: 8}, stats["tobacco"])
}

func TestDailyTransactionsSplitsByCategory(t *testing.T) {
	day := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	burger := models.CartItem{Product: testProduct("p1", "Burger", 10, models.CategoryFood), Quantity: 2}
	coffee := models.CartItem{Product: testProduct("p2", "Coffee", 3, models.CategoryDrinks), Quantity: 2}
	cigar := models.CartItem{Product: testProduct("p3", "Cigar", 8, "tobacco"), Quantity: 1}

	table := 7
	order := testOrder("INV-20260831-0001", 34, models.PaymentCash, day, burger, coffee, cigar)
	order.Table_number = &table

	yesterday := testOrder("INV-20260830-0009", 99, models.PaymentCard, day.AddDate(0, 0, -1))

	transactions := DailyTransactions([]models.Order{order, yesterday}, day)
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.Equal(t, "INV-20260831-0001", tx.Invoice_number)
	assert.Equal(t, 20.0, tx.Total_food)
	assert.Equal(t, 6.0, tx.Total_drinks)
	assert.Equal(t, 8.0, tx.Total_other)
	assert.Equal(t, 34.0, tx.Total_amount)
	require.NotNil(t, tx.Table_number)
	assert.Equal(t, 7, *tx.Table_number)
}

func TestSalesStatistics(t *testing.T) {
	now := time.Now()
	burger := models.CartItem{Product: testProduct("p1", "Burger", 10, models.CategoryFood), Quantity: 2}
	moreBurgers := models.CartItem{Product: testProduct("p1", "Burger", 10, models.CategoryFood), Quantity: 3}
	coffee := models.CartItem{Product: testProduct("p2", "Coffee", 3, models.CategoryDrinks), Quantity: 1}

	orders := []models.Order{
		testOrder("a", 23, models.PaymentCash, now, burger, coffee),
		testOrder("b", 30, models.PaymentCard, now, moreBurgers),
	}

	stats := SalesStatistics(orders)
	assert.Equal(t, 53.0, stats.Total_revenue)
	assert.Equal(t, 2, stats.Order_count)
	require.Len(t, stats.Product_quantities, 2)
	assert.Equal(t, models.ProductSales{Name: "Burger", Quantity: 5, Total: 50}, stats.Product_quantities[0])
	assert.Equal(t, models.ProductSales{Name: "Coffee", Quantity: 1, Total: 3}, stats.Product_quantities[1])
	assert.Equal(t, 1, stats.Payment_stats[models.PaymentCash].Count)
}

func TestNewDailySummary(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		testOrder("a", 10, models.PaymentCash, now),
		testOrder("b", 25, models.PaymentCard, now),
	}

	summary := NewDailySummary(orders, false)
	assert.Equal(t, 35.0, summary.Total_revenue)
	assert.Equal(t, 2, summary.Order_count)
	assert.False(t, summary.Is_closed)
	assert.NotEmpty(t, summary.Summary_id)

	closed := NewDailySummary(nil, true)
	assert.Equal(t, 0.0, closed.Total_revenue)
	assert.Equal(t, 0, closed.Order_count)
	assert.True(t, closed.Is_closed)
}
