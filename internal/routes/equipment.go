package routes

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"handover-system/internal/controllers"
	"handover-system/pkg/config"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController, cfg *config.Config) {
	api.GET("/equipment", ctrl.GetEquipment)
	api.GET("/equipment/serial", ctrl.FindBySerial)
	api.GET("/equipment/:id", ctrl.FindEquipment)
	api.POST("/equipment", ctrl.CreateEquipment)
	api.PUT("/equipment/:id", ctrl.UpdateEquipment)
	api.DELETE("/equipment/:id", ctrl.DeleteEquipment)

	api.POST("/equipment/:id/assign", ctrl.AssignEquipment)
	api.POST("/equipment/:id/unassign", ctrl.UnassignEquipment)
	api.POST("/equipment/:id/maintenance", ctrl.SetMaintenance)
	api.POST("/equipment/:id/retire", ctrl.RetireEquipment)

	api.POST("/equipment/import", ctrl.ImportCSV,
		middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Import.MaxCSVSize>>20)))
	api.POST("/equipment/ocr-search", ctrl.OCRSearch,
		middleware.BodyLimit(fmt.Sprintf("%dM", cfg.OCR.MaxImageSize>>20)))
}
