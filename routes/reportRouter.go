package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(incomingRoutes *gin.Engine, ctl *controllers.ReportController) {
	incomingRoutes.GET("/reports/sales", ctl.GenerateSalesReport())
	incomingRoutes.GET("/reports/payment-methods", ctl.GetPaymentMethodStats())
	incomingRoutes.GET("/reports/categories", ctl.GetProductCategoryStats())
	incomingRoutes.GET("/reports/daily-transactions", ctl.GetDailyTransactions())
	incomingRoutes.GET("/reports/transactions", ctl.SearchTransactions())
}
