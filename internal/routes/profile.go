package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runProfileRouter(api *echo.Group, ctrl *controllers.ProfileController) {
	api.GET("/collaborators", ctrl.GetProfiles)
	api.GET("/collaborators/:id", ctrl.FindProfile)
	api.GET("/collaborators/:id/equipment", ctrl.ProfileEquipment)
}
