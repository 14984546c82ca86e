package services

import (
	"context"
	"errors"
	"fmt"

	"go-restaurant-pos/models"
)

var ErrBadCredential = errors.New("manager credential rejected")

const (
	OpUpdateQuantity = "update"
	OpRemoveItem     = "remove"
	OpClearItems     = "clear"
)

// PrivilegedOp describes an item mutation that was blocked by the lock and
// is being resubmitted under manager credentials.
type PrivilegedOp struct {
	Type     string           `json:"type" validate:"required,eq=update|eq=remove|eq=clear"`
	Item     *models.CartItem `json:"item,omitempty"`
	Quantity int              `json:"quantity,omitempty"`
}

// ApplyPrivilegedOperation unlocks, applies the operation and re-locks in a
// single value transformation, so no unlocked intermediate state can ever be
// observed or persisted. Completed invoices are left untouched.
func ApplyPrivilegedOperation(invoice models.Invoice, op PrivilegedOp) models.Invoice {
	if invoice.Status == models.InvoiceStatusCompleted {
		return invoice
	}

	unlocked := ToggleInvoiceLock(invoice, false)

	var mutated models.Invoice
	switch op.Type {
	case OpUpdateQuantity:
		if op.Item == nil {
			mutated = unlocked
			break
		}
		mutated = UpdateItemQuantity(unlocked, *op.Item, op.Quantity)
	case OpRemoveItem:
		if op.Item == nil {
			mutated = unlocked
			break
		}
		mutated = UpdateItemQuantity(unlocked, *op.Item, 0)
	case OpClearItems:
		mutated = unlocked
		mutated.Items = []models.CartItem{}
		mutated.Total = 0
	default:
		mutated = unlocked
	}

	return ToggleInvoiceLock(mutated, true)
}

// ManagerGate validates the shared manager secret and runs privileged
// operations against the invoice store.
type ManagerGate struct {
	invoices *InvoiceStore
	settings *SettingsStore
	fallback string
}

// NewManagerGate takes the configured default password used when the
// settings collection holds none.
func NewManagerGate(invoices *InvoiceStore, settings *SettingsStore, defaultPassword string) *ManagerGate {
	return &ManagerGate{invoices: invoices, settings: settings, fallback: defaultPassword}
}

func (g *ManagerGate) CheckCredential(ctx context.Context, credential string) error {
	stored := g.settings.GetDefault(ctx, models.SettingManagerPassword, g.fallback)
	if credential != stored {
		return ErrBadCredential
	}
	return nil
}

// PerformPrivilegedOperation validates the credential, applies the operation
// on the locked invoice and persists the re-locked result, all before
// returning. A rejected credential changes no state.
func (g *ManagerGate) PerformPrivilegedOperation(ctx context.Context, invoiceID string, credential string, op PrivilegedOp) (models.Invoice, error) {
	if err := g.CheckCredential(ctx, credential); err != nil {
		return models.Invoice{}, err
	}

	invoice, err := g.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return models.Invoice{}, err
	}

	updated := ApplyPrivilegedOperation(invoice, op)
	if err := g.invoices.SaveInvoice(ctx, updated); err != nil {
		return models.Invoice{}, fmt.Errorf("saving invoice after privileged operation: %w", err)
	}
	return updated, nil
}

// ChangePassword rotates the manager secret after validating the current one.
func (g *ManagerGate) ChangePassword(ctx context.Context, current string, next string) error {
	if err := g.CheckCredential(ctx, current); err != nil {
		return err
	}
	return g.settings.Set(ctx, models.SettingManagerPassword, next)
}
