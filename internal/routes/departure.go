package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runDepartureRouter(api *echo.Group, ctrl *controllers.DepartureController) {
	api.GET("/departures/preview/:collaboratorId", ctrl.Preview)
	api.POST("/departures/check", ctrl.CheckItems)
	api.POST("/departures", ctrl.Complete)

	api.GET("/return-requests", ctrl.GetReturnRequests)
	api.GET("/return-requests/:id", ctrl.FindReturnRequest)
	api.POST("/return-requests/:id/process", ctrl.ProcessReturn)
}
