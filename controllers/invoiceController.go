package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-restaurant-pos/models"
	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type InvoiceController struct {
	invoices *services.InvoiceStore
	ledger   *services.OrderLedger
	history  *services.HistoryLog
	gate     *services.ManagerGate
	events   *services.EventBus
	products *mongo.Collection
}

func NewInvoiceController(
	invoices *services.InvoiceStore,
	ledger *services.OrderLedger,
	history *services.HistoryLog,
	gate *services.ManagerGate,
	events *services.EventBus,
	products *mongo.Collection,
) *InvoiceController {
	return &InvoiceController{
		invoices: invoices,
		ledger:   ledger,
		history:  history,
		gate:     gate,
		events:   events,
		products: products,
	}
}

func (ctl *InvoiceController) GetInvoices() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		invoices, err := ctl.invoices.ListInvoices(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing invoices"})
			return
		}
		c.JSON(http.StatusOK, invoices)
	}
}

func (ctl *InvoiceController) GetInvoice() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		invoice, err := ctl.invoices.GetInvoice(ctx, c.Param("invoice_id"))
		if err != nil {
			if errors.Is(err, services.ErrInvoiceNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

func (ctl *InvoiceController) CreateInvoice() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		invoice, err := ctl.invoices.CreateInvoice(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice was not created"})
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

func (ctl *InvoiceController) GetActiveInvoice() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		activeID, err := ctl.invoices.ActiveInvoiceID(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if activeID == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active invoice"})
			return
		}
		invoice, err := ctl.invoices.GetInvoice(ctx, activeID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "active invoice was not found"})
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

func (ctl *InvoiceController) SetActiveInvoice() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Invoice_id string `json:"invoice_id" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := ctl.invoices.SetActiveInvoice(ctx, body.Invoice_id); err != nil {
			if errors.Is(err, services.ErrInvoiceNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"active_invoice_id": body.Invoice_id})
	}
}

// AddProduct puts one unit of a catalog product on the invoice. A locked
// invoice is returned unchanged; the caller checks is_locked and routes
// through the manager override when needed.
func (ctl *InvoiceController) AddProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Product_id string `json:"product_id" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		invoice, err := ctl.invoices.GetInvoice(ctx, c.Param("invoice_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
			return
		}

		var product models.Product
		if err := ctl.products.FindOne(ctx, bson.M{"product_id": body.Product_id}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product was not found"})
			return
		}

		updated := services.AddProductToInvoice(invoice, product)
		if err := ctl.invoices.SaveInvoice(ctx, updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice update failed"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// UpdateItemQuantity sets or removes an item (quantity <= 0 removes). Locked
// invoices absorb the change silently.
func (ctl *InvoiceController) UpdateItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Product_id string `json:"product_id" validate:"required"`
			Quantity   int    `json:"quantity"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		invoice, err := ctl.invoices.GetInvoice(ctx, c.Param("invoice_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
			return
		}

		item := models.CartItem{Product: models.Product{Product_id: body.Product_id}}
		updated := services.UpdateItemQuantity(invoice, item, body.Quantity)
		if err := ctl.invoices.SaveInvoice(ctx, updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice update failed"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (ctl *InvoiceController) setLock(locked bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		invoice, err := ctl.invoices.GetInvoice(ctx, c.Param("invoice_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
			return
		}

		updated := services.ToggleInvoiceLock(invoice, locked)
		if err := ctl.invoices.SaveInvoice(ctx, updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice update failed"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (ctl *InvoiceController) LockInvoice() gin.HandlerFunc {
	return ctl.setLock(true)
}

func (ctl *InvoiceController) UnlockInvoice() gin.HandlerFunc {
	return ctl.setLock(false)
}

// PrivilegedOperation resubmits a blocked mutation under the manager secret.
// Credential check, mutation and re-lock happen in one call.
func (ctl *InvoiceController) PrivilegedOperation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body struct {
			Password string `json:"password" validate:"required"`
			Type     string `json:"type" validate:"required"`
			Item     *models.CartItem
			Quantity int `json:"quantity"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		op := services.PrivilegedOp{Type: body.Type, Item: body.Item, Quantity: body.Quantity}
		invoice, err := ctl.gate.PerformPrivilegedOperation(ctx, c.Param("invoice_id"), body.Password, op)
		if err != nil {
			if errors.Is(err, services.ErrBadCredential) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "manager password is incorrect"})
				return
			}
			if errors.Is(err, services.ErrInvoiceNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

type checkoutRequest struct {
	Payment_method  models.PaymentMethod `json:"payment_method" validate:"required"`
	Table_number    *int                 `json:"table_number,omitempty"`
	Room_number     *string              `json:"room_number,omitempty"`
	Should_finalize bool                 `json:"should_finalize"`
}

// Checkout completes the invoice and pushes the derived order into the
// ledger and the sales history. With should_finalize false only the order
// preview is computed; nothing is persisted.
func (ctl *InvoiceController) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req checkoutRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := req.Payment_method.IsValid(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		invoice, err := ctl.invoices.GetInvoice(ctx, c.Param("invoice_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice was not found"})
			return
		}

		order := services.OrderFromInvoice(invoice, req.Payment_method, req.Table_number, req.Room_number)

		if !req.Should_finalize {
			c.JSON(http.StatusOK, gin.H{"invoice": invoice, "order": order})
			return
		}

		completed := services.CompleteInvoice(invoice, req.Payment_method, req.Table_number, req.Room_number)
		if err := ctl.invoices.SaveInvoice(ctx, completed); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invoice completion failed"})
			return
		}

		if _, err := ctl.ledger.AddOrder(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not recorded"})
			return
		}
		if err := ctl.history.AddOrder(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not added to history"})
			return
		}

		ctl.events.Publish(services.TopicOrderCompleted, order)
		c.JSON(http.StatusOK, gin.H{"invoice": completed, "order": order})
	}
}
