package services

import (
	"testing"

	"go-restaurant-pos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, name string, price float64, category string) models.Product {
	return models.Product{
		Product_id: id,
		Name:       name,
		Price:      price,
		Category:   category,
	}
}

func TestAddProductToInvoice(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	coffee := testProduct("p1", "Coffee", 3.5, models.CategoryDrinks)

	invoice = AddProductToInvoice(invoice, coffee)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, 1, invoice.Items[0].Quantity)
	assert.Equal(t, 3.5, invoice.Total)

	invoice = AddProductToInvoice(invoice, coffee)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, 2, invoice.Items[0].Quantity)
	assert.Equal(t, 7.0, invoice.Total)

	tea := testProduct("p2", "Tea", 2.0, models.CategoryDrinks)
	invoice = AddProductToInvoice(invoice, tea)
	require.Len(t, invoice.Items, 2)
	assert.Equal(t, 9.0, invoice.Total)
}

func TestAddProductToLockedInvoiceIsAbsorbed(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Coffee", 3.5, models.CategoryDrinks))
	invoice = ToggleInvoiceLock(invoice, true)

	after := AddProductToInvoice(invoice, testProduct("p2", "Tea", 2.0, models.CategoryDrinks))
	assert.Equal(t, invoice.Items, after.Items)
	assert.Equal(t, invoice.Total, after.Total)
}

func TestUpdateItemQuantity(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	burger := testProduct("p1", "Burger", 10.0, models.CategoryFood)
	invoice = AddProductToInvoice(invoice, burger)

	invoice = UpdateItemQuantity(invoice, invoice.Items[0], 4)
	assert.Equal(t, 4, invoice.Items[0].Quantity)
	assert.Equal(t, 40.0, invoice.Total)
}

func TestUpdateItemQuantityZeroRemovesItem(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	burger := testProduct("p1", "Burger", 10.0, models.CategoryFood)
	fries := testProduct("p2", "Fries", 4.0, models.CategoryFood)
	invoice = AddProductToInvoice(invoice, burger)
	invoice = AddProductToInvoice(invoice, fries)

	invoice = UpdateItemQuantity(invoice, invoice.Items[0], 0)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "p2", invoice.Items[0].Product.Product_id)
	assert.Equal(t, 4.0, invoice.Total)

	invoice = UpdateItemQuantity(invoice, invoice.Items[0], -3)
	assert.Empty(t, invoice.Items)
	assert.Equal(t, 0.0, invoice.Total)
}

func TestUpdateItemQuantityOnLockedInvoiceIsAbsorbed(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	burger := testProduct("p1", "Burger", 10.0, models.CategoryFood)
	invoice = AddProductToInvoice(invoice, burger)
	invoice = ToggleInvoiceLock(invoice, true)

	after := UpdateItemQuantity(invoice, invoice.Items[0], 0)
	require.Len(t, after.Items, 1)
	assert.Equal(t, 10.0, after.Total)
}

func TestCompleteInvoice(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))

	table := 4
	completed := CompleteInvoice(invoice, models.PaymentCard, &table, nil)
	assert.Equal(t, models.InvoiceStatusCompleted, completed.Status)
	assert.True(t, completed.Is_locked)
	require.NotNil(t, completed.Completed_at)
	require.NotNil(t, completed.Payment_method)
	assert.Equal(t, models.PaymentCard, *completed.Payment_method)
	assert.Equal(t, 10.0, completed.Total)
	require.NotNil(t, completed.Table_number)
	assert.Equal(t, 4, *completed.Table_number)
}

func TestCompleteInvoiceFreeZeroesTotal(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))

	completed := CompleteInvoice(invoice, models.PaymentFree, nil, nil)
	assert.Equal(t, 0.0, completed.Total)
	assert.Equal(t, models.InvoiceStatusCompleted, completed.Status)
	require.Len(t, completed.Items, 1)
}

func TestCompleteInvoiceIsOneWay(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))
	completed := CompleteInvoice(invoice, models.PaymentCash, nil, nil)

	again := CompleteInvoice(completed, models.PaymentFree, nil, nil)
	assert.Equal(t, completed, again)

	mutated := AddProductToInvoice(completed, testProduct("p2", "Fries", 4.0, models.CategoryFood))
	assert.Equal(t, models.InvoiceStatusCompleted, mutated.Status)
	assert.Equal(t, completed.Items, mutated.Items)
	assert.Equal(t, completed.Total, mutated.Total)
}

func TestOrderFromInvoiceUsesInvoiceNumber(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0042")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))

	order := OrderFromInvoice(invoice, models.PaymentCash, nil, nil)
	assert.Equal(t, "INV-20260831-0042", order.Order_id)
	assert.Equal(t, 10.0, order.Total)
	assert.True(t, order.Completed)
	assert.Equal(t, invoice.Items, order.Items)
}

func TestOrderFromInvoiceFreeZeroesTotal(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0042")
	invoice = AddProductToInvoice(invoice, testProduct("p1", "Burger", 10.0, models.CategoryFood))

	order := OrderFromInvoice(invoice, models.PaymentFree, nil, nil)
	assert.Equal(t, 0.0, order.Total)
	assert.Equal(t, models.PaymentFree, order.Payment_method)
}

// Lifecycle walkthrough: two units at 70, lock blocks removal, manager-free
// removal works after unlock, free checkout zeroes the total.
func TestInvoiceLifecycleScenario(t *testing.T) {
	invoice := NewInvoice("INV-20260831-0001")
	dish := testProduct("p1", "Plat du jour", 70.0, models.CategoryFood)

	invoice = AddProductToInvoice(invoice, dish)
	invoice = AddProductToInvoice(invoice, dish)
	assert.Equal(t, 140.0, invoice.Total)

	invoice = ToggleInvoiceLock(invoice, true)
	blocked := UpdateItemQuantity(invoice, invoice.Items[0], 0)
	require.Len(t, blocked.Items, 1)
	assert.Equal(t, 140.0, blocked.Total)

	invoice = ToggleInvoiceLock(invoice, false)
	invoice = UpdateItemQuantity(invoice, invoice.Items[0], 0)
	assert.Empty(t, invoice.Items)
	assert.Equal(t, 0.0, invoice.Total)

	completed := CompleteInvoice(invoice, models.PaymentFree, nil, nil)
	assert.Equal(t, 0.0, completed.Total)
	assert.True(t, completed.Is_locked)
	assert.Equal(t, models.InvoiceStatusCompleted, completed.Status)
}

func TestNextInvoiceNumber(t *testing.T) {
	number, err := NextInvoiceNumber("", "20260831")
	require.NoError(t, err)
	assert.Equal(t, "INV-20260831-0001", number)

	number, err = NextInvoiceNumber("INV-20260831-0041", "20260831")
	require.NoError(t, err)
	assert.Equal(t, "INV-20260831-0042", number)

	_, err = NextInvoiceNumber("garbage", "20260831")
	assert.Error(t, err)

	_, err = NextInvoiceNumber("INV-20260831-abcd", "20260831")
	assert.Error(t, err)
}
