package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func ProductRoutes(incomingRoutes *gin.Engine, ctl *controllers.ProductController) {
	incomingRoutes.GET("/products", ctl.GetProducts())
	incomingRoutes.GET("/products/:product_id", ctl.GetProduct())
	incomingRoutes.POST("/products", ctl.CreateProduct())
	incomingRoutes.PATCH("/products/:product_id", ctl.UpdateProduct())
	incomingRoutes.DELETE("/products/:product_id", ctl.DeleteProduct())
}
