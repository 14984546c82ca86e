package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryLog is the independent sales log that survives ledger resets.
// Entries merge by order id, last write wins.
type HistoryLog struct {
	history *mongo.Collection
	ledger  *OrderLedger
}

func NewHistoryLog(history *mongo.Collection, ledger *OrderLedger) *HistoryLog {
	return &HistoryLog{history: history, ledger: ledger}
}

// AddOrder upserts by order id; applying the same order twice leaves a
// single entry.
func (h *HistoryLog) AddOrder(ctx context.Context, order models.Order) error {
	upsert := true
	opts := options.UpdateOptions{Upsert: &upsert}
	_, err := h.history.UpdateOne(ctx, bson.M{"order_id": order.Order_id}, orderUpdateDoc(order), &opts)
	return err
}

func (h *HistoryLog) Orders(ctx context.Context) ([]models.Order, error) {
	cursor, err := h.history.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h *HistoryLog) OrdersByDateRange(ctx context.Context, start time.Time, end time.Time) ([]models.Order, error) {
	orders, err := h.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrdersByDateRange(orders, start, end), nil
}

// MergeOrders folds incoming orders into history by order id: an existing
// entry is replaced, a new one appended. Merging the same orders again
// yields the same result.
func MergeOrders(history []models.Order, incoming []models.Order) []models.Order {
	merged := make([]models.Order, len(history))
	copy(merged, history)

	for _, order := range incoming {
		replaced := false
		for i := range merged {
			if merged[i].Order_id == order.Order_id {
				merged[i] = order
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, order)
		}
	}
	return merged
}

// Sync merges the full ledger (open plus archived) into the history log,
// making the log consistent with the ledger regardless of call order.
func (h *HistoryLog) Sync(ctx context.Context) error {
	all, err := h.ledger.AllOrders(ctx)
	if err != nil {
		return err
	}
	current, err := h.Orders(ctx)
	if err != nil {
		return err
	}

	merged := MergeOrders(current, all)

	if _, err := h.history.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(merged) > 0 {
		docs := make([]interface{}, 0, len(merged))
		for _, order := range merged {
			docs = append(docs, order)
		}
		if _, err := h.history.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	log.Printf("sales history synced, %d orders", len(merged))
	return nil
}

func (h *HistoryLog) Statistics(ctx context.Context) (models.SalesStatistics, error) {
	orders, err := h.Orders(ctx)
	if err != nil {
		return models.SalesStatistics{}, err
	}
	return SalesStatistics(orders), nil
}

var csvPaymentLabels = map[models.PaymentMethod]string{
	models.PaymentCash:         "Cash",
	models.PaymentCard:         "Card",
	models.PaymentRoomTransfer: "Room transfer",
	models.PaymentFree:         "Free of charge",
	models.PaymentOther:        "Other",
}

// ExportSalesHistoryToCSV renders orders as a semicolon-separated sheet.
func ExportSalesHistoryToCSV(orders []models.Order) string {
	if len(orders) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Date;Invoice number;Products;Quantities;Payment method;Total\n")

	for i, order := range orders {
		products := make([]string, 0, len(order.Items))
		quantities := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			products = append(products, item.Product.Name)
			quantities = append(quantities, fmt.Sprintf("%d", item.Quantity))
		}

		label, ok := csvPaymentLabels[order.Payment_method]
		if !ok {
			label = "Other"
		}

		b.WriteString(fmt.Sprintf("%s;%s;%s;%s;%s;%.2f",
			order.Order_date.Format("2006-01-02"),
			order.Order_id,
			strings.Join(products, ", "),
			strings.Join(quantities, ", "),
			label,
			order.Total,
		))
		if i < len(orders)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
