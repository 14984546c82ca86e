package services

import (
	"time"

	"go-restaurant-pos/models"

	"github.com/google/uuid"
)

// DayRange widens start/end to inclusive day boundaries:
// [00:00:00.000 of start, 23:59:59.999 of end].
func DayRange(start time.Time, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, end.Location())
	return from, to
}

func FilterOrdersByDateRange(orders []models.Order, start time.Time, end time.Time) []models.Order {
	from, to := DayRange(start, end)

	filtered := []models.Order{}
	for _, order := range orders {
		if !order.Order_date.Before(from) && !order.Order_date.After(to) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

func PaymentMethodStats(orders []models.Order) map[models.PaymentMethod]models.PaymentStat {
	stats := map[models.PaymentMethod]models.PaymentStat{
		models.PaymentCash:         {},
		models.PaymentCard:         {},
		models.PaymentOther:        {},
		models.PaymentRoomTransfer: {},
		models.PaymentFree:         {},
	}
	for _, order := range orders {
		stat := stats[order.Payment_method]
		stat.Count++
		stat.Total += order.Total
		stats[order.Payment_method] = stat
	}
	return stats
}

func ProductCategoryStats(orders []models.Order) map[string]models.CategoryStat {
	stats := map[string]models.CategoryStat{}
	for _, order := range orders {
		for _, item := range order.Items {
			stat := stats[item.Product.Category]
			stat.Count += item.Quantity
			stat.Total += item.Product.Price * float64(item.Quantity)
			stats[item.Product.Category] = stat
		}
	}
	return stats
}

func categoryTotal(items []models.CartItem, category string) float64 {
	total := 0.0
	for _, item := range items {
		if item.Product.Category == category {
			total += item.Product.Price * float64(item.Quantity)
		}
	}
	return total
}

func otherCategoryTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		if item.Product.Category != models.CategoryFood && item.Product.Category != models.CategoryDrinks {
			total += item.Product.Price * float64(item.Quantity)
		}
	}
	return total
}

// DailyTransactions maps the orders of the given day onto transaction rows
// with the amount split across food, drinks and everything else.
func DailyTransactions(orders []models.Order, day time.Time) []models.Transaction {
	from, to := DayRange(day, day)

	transactions := []models.Transaction{}
	for _, order := range orders {
		if order.Order_date.Before(from) || order.Order_date.After(to) {
			continue
		}
		transactions = append(transactions, models.Transaction{
			Transaction_id: order.Order_id,
			Invoice_number: order.Order_id,
			Table_number:   order.Table_number,
			Room_number:    order.Room_number,
			Server:         "N/A",
			Operator:       "N/A",
			Total_food:     categoryTotal(order.Items, models.CategoryFood),
			Total_drinks:   categoryTotal(order.Items, models.CategoryDrinks),
			Total_other:    otherCategoryTotal(order.Items),
			Total_amount:   order.Total,
			Payment_method: order.Payment_method,
			Date:           order.Order_date,
		})
	}
	return transactions
}

// SalesStatistics aggregates the figures shown on the history page.
func SalesStatistics(orders []models.Order) models.SalesStatistics {
	totalRevenue := 0.0
	quantities := map[string]*models.ProductSales{}
	productOrder := []string{}

	for _, order := range orders {
		totalRevenue += order.Total
		for _, item := range order.Items {
			id := item.Product.Product_id
			if _, ok := quantities[id]; !ok {
				quantities[id] = &models.ProductSales{Name: item.Product.Name}
				productOrder = append(productOrder, id)
			}
			quantities[id].Quantity += item.Quantity
			quantities[id].Total += item.Product.Price * float64(item.Quantity)
		}
	}

	productQuantities := make([]models.ProductSales, 0, len(productOrder))
	for _, id := range productOrder {
		productQuantities = append(productQuantities, *quantities[id])
	}

	return models.SalesStatistics{
		Total_revenue:      totalRevenue,
		Order_count:        len(orders),
		Product_quantities: productQuantities,
		Payment_stats:      PaymentMethodStats(orders),
	}
}

// NewDailySummary recomputes the summary read model from the open ledger.
func NewDailySummary(orders []models.Order, isClosed bool) models.DailySummary {
	totalRevenue := 0.0
	for _, order := range orders {
		totalRevenue += order.Total
	}
	return models.DailySummary{
		Summary_id:    uuid.NewString(),
		Date:          time.Now(),
		Total_revenue: totalRevenue,
		Order_count:   len(orders),
		Is_closed:     isClosed,
	}
}
