package controllers

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	ledger *services.OrderLedger
}

func NewOrderController(ledger *services.OrderLedger) *OrderController {
	return &OrderController{ledger: ledger}
}

func (ctl *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := ctl.ledger.OpenOrders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctl *OrderController) GetArchivedOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := ctl.ledger.ArchivedOrders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing archived orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctl *OrderController) GetDailySummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		summary, err := ctl.ledger.DailySummary(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// CloseDay archives the open ledger. A refusal (drafts still open) comes
// back as success=false with http 409, not as an error.
func (ctl *OrderController) CloseDay() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := ctl.ledger.CloseDay(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !result.Success {
			c.JSON(http.StatusConflict, result)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (ctl *OrderController) GetLastCloseReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		report, err := ctl.ledger.LastCloseReport(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if report == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no daily close has been recorded yet"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
