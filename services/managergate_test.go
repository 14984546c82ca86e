package services

import (
	"testing"

	"go-restaurant-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockedInvoiceWithItems(t *testing.T) models.Invoice {
	t.Helper()
	invoice := NewInvoice("INV-20260831-0001")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))
	invoice = AddProductToInvoice(invoice, testProduct("p2", "Fries", 4.0, models.CategoryFood))
	return ToggleInvoiceLock(invoice, true)
}

func TestApplyPrivilegedOperationUpdate(t *testing.T) {
	invoice := lockedInvoiceWithItems(t)

	after := ApplyPrivilegedOperation(invoice, PrivilegedOp{
		Type:     OpUpdateQuantity,
		Item:     &invoice.Items[0],
		Quantity: 3,
	})

	assert.True(t, after.Is_locked, "invoice must come back locked")
	require.Len(t, after.Items, 2)
	assert.Equal(t, 3, after.Items[0].Quantity)
	assert.Equal(t, 34.0, after.Total)
}

func TestApplyPrivilegedOperationRemove(t *testing.T) {
	invoice := lockedInvoiceWithItems(t)

	after := ApplyPrivilegedOperation(invoice, PrivilegedOp{
		Type: OpRemoveItem,
		Item: &invoice.Items[0],
	})

	assert.True(t, after.Is_locked)
	require.Len(t, after.Items, 1)
	assert.Equal(t, "p2", after.Items[0].Product.Product_id)
	assert.Equal(t, 4.0, after.Total)
}

func TestApplyPrivilegedOperationClear(t *testing.T) {
	invoice := lockedInvoiceWithItems(t)

	after := ApplyPrivilegedOperation(invoice, PrivilegedOp{Type: OpClearItems})

	assert.True(t, after.Is_locked)
	assert.Empty(t, after.Items)
	assert.Equal(t, 0.0, after.Total)
}

func TestApplyPrivilegedOperationMissingItemIsNoop(t *testing.T) {
	invoice := lockedInvoiceWithItems(t)

	after := ApplyPrivilegedOperation(invoice, PrivilegedOp{Type: OpUpdateQuantity, Quantity: 3})

	assert.True(t, after.Is_locked)
	assert.Equal(t, invoice.Items, after.Items)
	assert.Equal(t, invoice.Total, after.Total)
}

func TestApplyPrivilegedOperationOnCompletedInvoice(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))
	completed := CompleteInvoice(invoice, models.PaymentCash, nil, nil)

	after := ApplyPrivilegedOperation(completed, PrivilegedOp{Type: OpClearItems})
	assert.Equal(t, completed, after)
}
