package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runCompanyRouter(api *echo.Group, ctrl *controllers.CompanyController) {
	api.GET("/companies", ctrl.GetCompanies)
	api.GET("/companies/:id", ctrl.FindCompany)
	api.POST("/companies", ctrl.CreateCompany)
	api.PUT("/companies/:id", ctrl.UpdateCompany)
}
