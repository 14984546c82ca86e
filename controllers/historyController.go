package controllers

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	history *services.HistoryLog
}

func NewHistoryController(history *services.HistoryLog) *HistoryController {
	return &HistoryController{history: history}
}

func (ctl *HistoryController) GetSalesHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := ctl.history.Orders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while loading sales history"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctl *HistoryController) GetSalesHistoryByDateRange() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}

		orders, err := ctl.history.OrdersByDateRange(ctx, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func (ctl *HistoryController) GetStatistics() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		stats, err := ctl.history.Statistics(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// ExportCSV streams the history (optionally range-filtered) as a
// semicolon-separated file.
func (ctl *HistoryController) ExportCSV() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := ctl.history.Orders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if c.Query("start_date") != "" && c.Query("end_date") != "" {
			start, end, ok := parseDateRange(c)
			if !ok {
				return
			}
			orders = services.FilterOrdersByDateRange(orders, start, end)
		}

		csv := services.ExportSalesHistoryToCSV(orders)
		c.Header("Content-Disposition", "attachment; filename=sales-history.csv")
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
	}
}

// SyncHistory merges the full ledger into the history log.
func (ctl *HistoryController) SyncHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if err := ctl.history.Sync(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "history sync failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "sales history synced"})
	}
}
