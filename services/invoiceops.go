package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pure transitions over invoice values. Mutations on a locked invoice are
// absorbed: the input is returned unchanged and the caller decides whether
// to route through the manager gate.

func CalculateInvoiceTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func NewInvoice(number string) models.Invoice {
	id := primitive.NewObjectID()
	return models.Invoice{
		ID:             id,
		Invoice_id:     id.Hex(),
		Invoice_number: number,
		Items:          []models.CartItem{},
		Status:         models.InvoiceStatusDraft,
		Created_at:     time.Now(),
		Total:          0,
		Is_locked:      false,
	}
}

func AddProductToInvoice(invoice models.Invoice, product models.Product) models.Invoice {
	if invoice.Is_locked {
		return invoice
	}

	items := make([]models.CartItem, 0, len(invoice.Items)+1)
	found := false
	for _, item := range invoice.Items {
		if item.Product.Product_id == product.Product_id {
			item.Quantity++
			found = true
		}
		items = append(items, item)
	}
	if !found {
		items = append(items, models.CartItem{Product: product, Quantity: 1})
	}

	invoice.Items = items
	invoice.Total = CalculateInvoiceTotal(items)
	return invoice
}

func UpdateItemQuantity(invoice models.Invoice, item models.CartItem, newQuantity int) models.Invoice {
	if invoice.Is_locked {
		return invoice
	}

	items := make([]models.CartItem, 0, len(invoice.Items))
	for _, existing := range invoice.Items {
		if existing.Product.Product_id == item.Product.Product_id {
			if newQuantity <= 0 {
				continue
			}
			existing.Quantity = newQuantity
		}
		items = append(items, existing)
	}

	invoice.Items = items
	invoice.Total = CalculateInvoiceTotal(items)
	return invoice
}

func ToggleInvoiceLock(invoice models.Invoice, locked bool) models.Invoice {
	invoice.Is_locked = locked
	return invoice
}

// CompleteInvoice is the one-way draft to completed transition. A completed
// invoice stays completed and locked no matter how often this is called.
func CompleteInvoice(invoice models.Invoice, method models.PaymentMethod, tableNumber *int, roomNumber *string) models.Invoice {
	if invoice.Status == models.InvoiceStatusCompleted {
		return invoice
	}

	now := time.Now()
	total := CalculateInvoiceTotal(invoice.Items)
	if method == models.PaymentFree {
		total = 0
	}

	invoice.Status = models.InvoiceStatusCompleted
	invoice.Completed_at = &now
	invoice.Payment_method = &method
	invoice.Table_number = tableNumber
	invoice.Room_number = roomNumber
	invoice.Total = total
	invoice.Is_locked = true
	return invoice
}

// OrderFromInvoice snapshots a completed invoice into the ledger unit. The
// order id is the invoice's human-readable number.
func OrderFromInvoice(invoice models.Invoice, method models.PaymentMethod, tableNumber *int, roomNumber *string) models.Order {
	total := invoice.Total
	if method == models.PaymentFree {
		total = 0
	}

	items := make([]models.CartItem, len(invoice.Items))
	copy(items, invoice.Items)

	return models.Order{
		ID:             primitive.NewObjectID(),
		Order_id:       invoice.Invoice_number,
		Items:          items,
		Total:          total,
		Payment_method: method,
		Order_date:     time.Now(),
		Table_number:   tableNumber,
		Room_number:    roomNumber,
		Completed:      true,
	}
}

const invoiceNumberPrefix = "INV"

// NextInvoiceNumber computes the INV-YYYYMMDD-NNNN number following
// lastNumber for the given date. An empty lastNumber starts the day at 0001.
func NextInvoiceNumber(lastNumber string, date string) (string, error) {
	sequence := 1
	if lastNumber != "" {
		parts := strings.Split(lastNumber, "-")
		if len(parts) < 3 {
			return "", fmt.Errorf("invalid invoice number format: %s", lastNumber)
		}
		seq, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", err
		}
		sequence = seq + 1
	}
	return fmt.Sprintf("%s-%s-%04d", invoiceNumberPrefix, date, sequence), nil
}
