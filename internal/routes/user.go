package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runUserRouter(api *echo.Group, ctrl *controllers.UserController) {
	api.GET("/users", ctrl.GetUsers)
	api.GET("/users/:id", ctrl.FindUser)
	api.POST("/users", ctrl.CreateUser)
	api.PUT("/users/:id", ctrl.UpdateUser)
	api.DELETE("/users/:id", ctrl.DeleteUser)
}
