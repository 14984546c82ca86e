package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func SettingsRoutes(incomingRoutes *gin.Engine, ctl *controllers.SettingsController) {
	incomingRoutes.GET("/settings", ctl.GetSettings())
	incomingRoutes.PUT("/settings", ctl.UpdateSetting())
	incomingRoutes.PUT("/settings/manager-password", ctl.ChangeManagerPassword())
}
