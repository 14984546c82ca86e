package models

import "time"

// DailySummary is a read model recomputed from the open ledger, never stored
// as authoritative state.
type DailySummary struct {
	Summary_id    string    `json:"summary_id"`
	Date          time.Time `json:"date"`
	Total_revenue float64   `json:"total_revenue"`
	Order_count   int       `json:"order_count"`
	Is_closed     bool      `json:"is_closed"`
}

type SalesReport struct {
	Start_date    time.Time `json:"start_date"`
	End_date      time.Time `json:"end_date"`
	Orders        []Order   `json:"orders"`
	Total_revenue float64   `json:"total_revenue"`
	Order_count   int       `json:"order_count"`
}

type PaymentStat struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type CategoryStat struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type SalesStatistics struct {
	Total_revenue      float64                       `json:"total_revenue"`
	Order_count        int                           `json:"order_count"`
	Product_quantities []ProductSales                `json:"product_quantities"`
	Payment_stats      map[PaymentMethod]PaymentStat `json:"payment_stats"`
}

// Transaction is the per-order row of the daily report, with the amount
// split by catalog category.
type Transaction struct {
	Transaction_id string        `json:"transaction_id"`
	Invoice_number string        `json:"invoice_number"`
	Table_number   *int          `json:"table_number,omitempty"`
	Room_number    *string       `json:"room_number,omitempty"`
	Server         string        `json:"server"`
	Operator       string        `json:"operator"`
	Total_food     float64       `json:"total_food"`
	Total_drinks   float64       `json:"total_drinks"`
	Total_other    float64       `json:"total_other"`
	Total_amount   float64       `json:"total_amount"`
	Payment_method PaymentMethod `json:"payment_method"`
	Date           time.Time     `json:"date"`
}

// CloseReport is the snapshot persisted at daily close so the close ticket
// can be reprinted later.
type CloseReport struct {
	Close_date   time.Time     `json:"close_date"`
	Summary      DailySummary  `json:"summary"`
	Transactions []Transaction `json:"transactions"`
	Orders       []Order       `json:"orders"`
}

type CloseResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
