package controllers

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-pos/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ledger *services.OrderLedger
}

func NewReportController(ledger *services.OrderLedger) *ReportController {
	return &ReportController{ledger: ledger}
}

func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date format"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date format"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (ctl *ReportController) GenerateSalesReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}

		report, err := ctl.ledger.SalesReport(ctx, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while generating report"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

func (ctl *ReportController) GetPaymentMethodStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		stats, err := ctl.ledger.PaymentMethodStats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func (ctl *ReportController) GetProductCategoryStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		stats, err := ctl.ledger.ProductCategoryStats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func (ctl *ReportController) GetDailyTransactions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		transactions, err := ctl.ledger.DailyTransactions(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

func (ctl *ReportController) SearchTransactions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		start, end, ok := parseDateRange(c)
		if !ok {
			return
		}

		transactions, err := ctl.ledger.SearchTransactions(ctx, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}
