package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the immutable snapshot taken from a completed invoice. Order_id
// carries the invoice's human-readable number; ledgers and the sales history
// upsert by it.
type Order struct {
	ID             primitive.ObjectID `bson:"_id"`
	Order_id       string             `json:"order_id" bson:"order_id"`
	Items          []CartItem         `json:"items" bson:"items"`
	Total          float64            `json:"total" bson:"total"`
	Payment_method PaymentMethod      `json:"payment_method" bson:"payment_method" validate:"required"`
	Order_date     time.Time          `json:"order_date" bson:"order_date"`
	Table_number   *int               `json:"table_number,omitempty" bson:"table_number,omitempty"`
	Room_number    *string            `json:"room_number,omitempty" bson:"room_number,omitempty"`
	Completed      bool               `json:"completed" bson:"completed"`
}
