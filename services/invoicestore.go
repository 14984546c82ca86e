package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-restaurant-pos/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceStore persists draft and completed invoices together with the
// active-invoice pointer.
type InvoiceStore struct {
	invoices *mongo.Collection
	settings *SettingsStore
}

func NewInvoiceStore(invoices *mongo.Collection, settings *SettingsStore) *InvoiceStore {
	return &InvoiceStore{invoices: invoices, settings: settings}
}

func (s *InvoiceStore) lastInvoiceNumber(ctx context.Context, date string) (string, error) {
	filter := bson.M{
		"invoice_number": bson.M{
			"$regex": fmt.Sprintf("^%s-%s-", invoiceNumberPrefix, date),
		},
	}
	// The zero-padded sequence makes invoice numbers sort lexically, so the
	// highest number of the day wins even when timestamps collide.
	opts := options.FindOne().SetSort(bson.M{"invoice_number": -1})

	var lastInvoice models.Invoice
	err := s.invoices.FindOne(ctx, filter, opts).Decode(&lastInvoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", err
	}
	return lastInvoice.Invoice_number, nil
}

// CreateInvoice opens a new empty draft, numbers it after the last invoice
// of the day and makes it the active invoice.
func (s *InvoiceStore) CreateInvoice(ctx context.Context) (models.Invoice, error) {
	date := time.Now().Format("20060102")
	lastNumber, err := s.lastInvoiceNumber(ctx, date)
	if err != nil {
		return models.Invoice{}, err
	}
	number, err := NextInvoiceNumber(lastNumber, date)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice := NewInvoice(number)
	if _, err := s.invoices.InsertOne(ctx, invoice); err != nil {
		return models.Invoice{}, err
	}
	if err := s.settings.Set(ctx, models.SettingActiveInvoiceID, invoice.Invoice_id); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

func (s *InvoiceStore) GetInvoice(ctx context.Context, invoiceID string) (models.Invoice, error) {
	var invoice models.Invoice
	err := s.invoices.FindOne(ctx, bson.M{"invoice_id": invoiceID}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Invoice{}, ErrInvoiceNotFound
		}
		return models.Invoice{}, err
	}
	return invoice, nil
}

func (s *InvoiceStore) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	cursor, err := s.invoices.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// SaveInvoice replaces the stored invoice wholesale, keyed by invoice_id.
func (s *InvoiceStore) SaveInvoice(ctx context.Context, invoice models.Invoice) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.invoices.ReplaceOne(ctx, bson.M{"invoice_id": invoice.Invoice_id}, invoice, opts)
	return err
}

func (s *InvoiceStore) ActiveInvoiceID(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, models.SettingActiveInvoiceID)
}

func (s *InvoiceStore) SetActiveInvoice(ctx context.Context, invoiceID string) error {
	if invoiceID == "" {
		return s.settings.Delete(ctx, models.SettingActiveInvoiceID)
	}
	if _, err := s.GetInvoice(ctx, invoiceID); err != nil {
		return err
	}
	return s.settings.Set(ctx, models.SettingActiveInvoiceID, invoiceID)
}

// AllDraftsCompleted is the daily-close guard: true only when no invoice is
// still in draft.
func (s *InvoiceStore) AllDraftsCompleted(ctx context.Context) (bool, error) {
	invoices, err := s.ListInvoices(ctx)
	if err != nil {
		return false, err
	}
	return AllInvoicesCompleted(invoices), nil
}

// ClearInvoices drops every stored invoice and the active pointer; called by
// the daily close after archiving.
func (s *InvoiceStore) ClearInvoices(ctx context.Context) error {
	if _, err := s.invoices.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	return s.settings.Delete(ctx, models.SettingActiveInvoiceID)
}
