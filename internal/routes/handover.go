package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runHandoverRouter(api *echo.Group, ctrl *controllers.HandoverController) {
	api.GET("/handovers", ctrl.GetHandovers)
	api.GET("/handover-documents", ctrl.GetDocuments)
	api.GET("/handover-documents/:id", ctrl.FindDocument)
}
