package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentOther        PaymentMethod = "other"
	PaymentRoomTransfer PaymentMethod = "room_transfer"
	PaymentFree         PaymentMethod = "free"
)

func (m PaymentMethod) IsValid() error {
	switch m {
	case PaymentCash, PaymentCard, PaymentOther, PaymentRoomTransfer, PaymentFree:
		return nil
	}
	return errors.New("invalid payment method: must be 'cash', 'card', 'other', 'room_transfer' or 'free'")
}

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusCompleted = "completed"
)

// CartItem references a catalog product; an item never survives with
// quantity zero, it is removed from the invoice instead.
type CartItem struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"min=1"`
	Notes    string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Invoice struct {
	ID             primitive.ObjectID `bson:"_id"`
	Invoice_id     string             `json:"invoice_id" bson:"invoice_id"`
	Invoice_number string             `json:"invoice_number" bson:"invoice_number"`
	Items          []CartItem         `json:"items" bson:"items"`
	Status         string             `json:"status" bson:"status" validate:"required,eq=draft|eq=completed"`
	Is_locked      bool               `json:"is_locked" bson:"is_locked"`
	Created_at     time.Time          `json:"created_at" bson:"created_at"`
	Completed_at   *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Total          float64            `json:"total" bson:"total"`
	Payment_method *PaymentMethod     `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	Table_number   *int               `json:"table_number,omitempty" bson:"table_number,omitempty"`
	Room_number    *string            `json:"room_number,omitempty" bson:"room_number,omitempty"`
}
