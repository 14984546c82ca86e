package services

import (
	"context"
	"log"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderLedger owns the open order store and the closed-day archive. Orders
// are upserted by their invoice number, so replaying a completed invoice is
// harmless.
type OrderLedger struct {
	orders   *mongo.Collection
	archive  *mongo.Collection
	settings *SettingsStore
	invoices *InvoiceStore
	events   *EventBus
}

func NewOrderLedger(orders *mongo.Collection, archive *mongo.Collection, settings *SettingsStore, invoices *InvoiceStore, events *EventBus) *OrderLedger {
	return &OrderLedger{
		orders:   orders,
		archive:  archive,
		settings: settings,
		invoices: invoices,
		events:   events,
	}
}

// AddOrder upserts into the open ledger keyed by order id. Replaying the
// same order rewrites the entry instead of duplicating it.
func (l *OrderLedger) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	upsert := true
	opts := options.UpdateOptions{Upsert: &upsert}
	_, err := l.orders.UpdateOne(ctx, bson.M{"order_id": order.Order_id}, orderUpdateDoc(order), &opts)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func orderUpdateDoc(order models.Order) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "order_id", Value: order.Order_id},
		{Key: "items", Value: order.Items},
		{Key: "total", Value: order.Total},
		{Key: "payment_method", Value: order.Payment_method},
		{Key: "order_date", Value: order.Order_date},
		{Key: "table_number", Value: order.Table_number},
		{Key: "room_number", Value: order.Room_number},
		{Key: "completed", Value: order.Completed},
	}}, {Key: "$setOnInsert", Value: bson.D{
		{Key: "_id", Value: order.ID},
	}}}
}

func (l *OrderLedger) readOrders(ctx context.Context, col *mongo.Collection) ([]models.Order, error) {
	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (l *OrderLedger) OpenOrders(ctx context.Context) ([]models.Order, error) {
	return l.readOrders(ctx, l.orders)
}

func (l *OrderLedger) ArchivedOrders(ctx context.Context) ([]models.Order, error) {
	return l.readOrders(ctx, l.archive)
}

// AllOrders returns open plus archived orders, the set every report reads.
func (l *OrderLedger) AllOrders(ctx context.Context) ([]models.Order, error) {
	open, err := l.OpenOrders(ctx)
	if err != nil {
		return nil, err
	}
	archived, err := l.ArchivedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return append(open, archived...), nil
}

func (l *OrderLedger) isClosedToday(ctx context.Context) bool {
	lastCloseDate, err := l.settings.Get(ctx, models.SettingLastCloseDate)
	if err != nil || lastCloseDate == "" {
		return false
	}
	closeDate, err := time.Parse(time.RFC3339, lastCloseDate)
	if err != nil {
		return false
	}
	now := time.Now()
	return closeDate.Year() == now.Year() && closeDate.YearDay() == now.YearDay()
}

func (l *OrderLedger) DailySummary(ctx context.Context) (models.DailySummary, error) {
	open, err := l.OpenOrders(ctx)
	if err != nil {
		return models.DailySummary{}, err
	}
	return NewDailySummary(open, l.isClosedToday(ctx)), nil
}

// AllInvoicesCompleted is the daily-close guard: the close is refused
// while any stored invoice has not reached completed.
func AllInvoicesCompleted(invoices []models.Invoice) bool {
	for _, invoice := range invoices {
		if invoice.Status != models.InvoiceStatusCompleted {
			return false
		}
	}
	return true
}

// NewCloseReport assembles the snapshot persisted at daily close so the
// close ticket can be reprinted after the ledger resets.
func NewCloseReport(open []models.Order, now time.Time) models.CloseReport {
	return models.CloseReport{
		Close_date:   now,
		Summary:      NewDailySummary(open, true),
		Transactions: DailyTransactions(open, now),
		Orders:       open,
	}
}

// CloseDay archives every open order, snapshots the close report and resets
// the ledger and the drafts for a new day. Refused while any invoice is
// still in draft.
func (l *OrderLedger) CloseDay(ctx context.Context) (models.CloseResult, error) {
	allCompleted, err := l.invoices.AllDraftsCompleted(ctx)
	if err != nil {
		return models.CloseResult{}, err
	}
	if !allCompleted {
		return models.CloseResult{
			Success: false,
			Message: "cannot close the day: every invoice must be completed and paid first",
		}, nil
	}

	open, err := l.OpenOrders(ctx)
	if err != nil {
		return models.CloseResult{}, err
	}

	now := time.Now()
	report := NewCloseReport(open, now)
	if err := l.settings.SetJSON(ctx, models.SettingLastCloseReport, report); err != nil {
		return models.CloseResult{}, err
	}

	if len(open) > 0 {
		docs := make([]interface{}, 0, len(open))
		for _, order := range open {
			docs = append(docs, order)
		}
		if _, err := l.archive.InsertMany(ctx, docs); err != nil {
			return models.CloseResult{}, err
		}
	}

	if err := l.settings.Set(ctx, models.SettingLastCloseDate, now.Format(time.RFC3339)); err != nil {
		return models.CloseResult{}, err
	}
	if _, err := l.orders.DeleteMany(ctx, bson.M{}); err != nil {
		return models.CloseResult{}, err
	}
	if err := l.invoices.ClearInvoices(ctx); err != nil {
		return models.CloseResult{}, err
	}

	log.Printf("daily close done, %d orders archived", len(open))
	l.events.Publish(TopicDayClosed, report.Summary)

	return models.CloseResult{Success: true, Message: "daily close completed"}, nil
}

// LastCloseReport returns the snapshot stored by the most recent close, or
// nil when no close happened yet.
func (l *OrderLedger) LastCloseReport(ctx context.Context) (*models.CloseReport, error) {
	var report models.CloseReport
	found, err := l.settings.GetJSON(ctx, models.SettingLastCloseReport, &report)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &report, nil
}

// SalesReport filters open plus archived orders on inclusive day boundaries.
func (l *OrderLedger) SalesReport(ctx context.Context, start time.Time, end time.Time) (models.SalesReport, error) {
	all, err := l.AllOrders(ctx)
	if err != nil {
		return models.SalesReport{}, err
	}

	orders := FilterOrdersByDateRange(all, start, end)
	totalRevenue := 0.0
	for _, order := range orders {
		totalRevenue += order.Total
	}

	from, to := DayRange(start, end)
	return models.SalesReport{
		Start_date:    from,
		End_date:      to,
		Orders:        orders,
		Total_revenue: totalRevenue,
		Order_count:   len(orders),
	}, nil
}

func (l *OrderLedger) PaymentMethodStats(ctx context.Context) (map[models.PaymentMethod]models.PaymentStat, error) {
	open, err := l.OpenOrders(ctx)
	if err != nil {
		return nil, err
	}
	return PaymentMethodStats(open), nil
}

func (l *OrderLedger) ProductCategoryStats(ctx context.Context) (map[string]models.CategoryStat, error) {
	open, err := l.OpenOrders(ctx)
	if err != nil {
		return nil, err
	}
	return ProductCategoryStats(open), nil
}

func (l *OrderLedger) DailyTransactions(ctx context.Context) ([]models.Transaction, error) {
	open, err := l.OpenOrders(ctx)
	if err != nil {
		return nil, err
	}
	return DailyTransactions(open, time.Now()), nil
}

// SearchTransactions reports over open plus archived orders for a range.
func (l *OrderLedger) SearchTransactions(ctx context.Context, start time.Time, end time.Time) ([]models.Transaction, error) {
	all, err := l.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	for _, order := range FilterOrdersByDateRange(all, start, end) {
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
	return transactions, nil
}
