package routes

import (
	"github.com/labstack/echo/v4"

	"handover-system/internal/controllers"
)

func runCollaboratorRouter(api *echo.Group, ctrl *controllers.CollaboratorController) {
	api.GET("/collaborator-requests", ctrl.GetRequests)
	api.GET("/collaborator-requests/prefill", ctrl.Prefill)
	api.GET("/collaborator-requests/:id", ctrl.FindRequest)
	api.POST("/collaborator-requests", ctrl.SubmitRequest)

	api.POST("/collaborator-requests/:id/validate", ctrl.ValidateRequest)
	api.GET("/collaborator-requests/:id/available-equipment", ctrl.AvailableEquipment)
	api.POST("/collaborator-requests/:id/equipment", ctrl.SelectEquipment)
	api.POST("/collaborator-requests/:id/handover", ctrl.GenerateHandover)
	api.POST("/collaborator-requests/:id/complete", ctrl.CompleteRequest)
}
