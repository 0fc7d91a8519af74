package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runReportRouter(api *echo.Group, ctrl *controllers.ReportController) {
	api.GET("/reports/inventory", ctrl.Inventory)
	api.GET("/reports/companies/:companyId/equipment", ctrl.CompanyEquipment)
	api.GET("/reports/users/:userId/equipment", ctrl.UserEquipment)
	api.GET("/reports/handovers", ctrl.HandoverHistory)
}
