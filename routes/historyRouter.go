package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func HistoryRoutes(incomingRoutes *gin.Engine, ctl *controllers.HistoryController) {
	incomingRoutes.GET("/history", ctl.GetSalesHistory())
	incomingRoutes.GET("/history/range", ctl.GetSalesHistoryByDateRange())
	incomingRoutes.GET("/history/statistics", ctl.GetStatistics())
	incomingRoutes.GET("/history/export", ctl.ExportCSV())
	incomingRoutes.POST("/history/sync", ctl.SyncHistory())
}
