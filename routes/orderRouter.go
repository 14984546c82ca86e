package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, ctl *controllers.OrderController) {
	incomingRoutes.GET("/orders", ctl.GetOrders())
	incomingRoutes.GET("/orders/archived", ctl.GetArchivedOrders())
	incomingRoutes.GET("/orders/daily-summary", ctl.GetDailySummary())
	incomingRoutes.POST("/orders/close-day", ctl.CloseDay())
	incomingRoutes.GET("/orders/close-report", ctl.GetLastCloseReport())
}
