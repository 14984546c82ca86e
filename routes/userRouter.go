package routes

import (
	"go-restaurant-pos/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, ctl *controllers.UserController) {
	incomingRoutes.GET("/users", ctl.GetUsers())
	incomingRoutes.GET("/users/:user_id", ctl.GetUser())
	incomingRoutes.POST("/users/signup", ctl.SignUp())
	incomingRoutes.POST("/users/login", ctl.Login())
}
