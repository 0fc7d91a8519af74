package controllers

import (
	"net/http"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/services"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DepartureController struct {
	departureService services.DepartureServiceInterface
	logger           *zap.Logger
}

func NewDepartureController(departureService services.DepartureServiceInterface, logger *zap.Logger) *DepartureController {
	return &DepartureController{departureService: departureService, logger: logger}
}

// Preview loads the working list for a departure: the collaborator's
// assigned equipment with default return conditions.
func (c *DepartureController) Preview(ctx echo.Context) error {
	preview, err := c.departureService.Preview(ctx.Request().Context(), ctx.Param("collaboratorId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, preview, "Departure preview ready", http.StatusOK)
}

// CheckItems runs the received-gate without completing anything, so the
// client can tell whether the flow may advance to signature.
func (c *DepartureController) CheckItems(ctx echo.Context) error {
	var payload dto.CompleteDepartureDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	items := make([]entities.EquipmentReturn, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, entities.EquipmentReturn{
			EquipmentID: item.EquipmentID,
			Status:      entities.ReturnCondition(item.Status),
			Received:    item.Received,
		})
	}
	if err := c.departureService.ReadyForSignature(items); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "All items received, ready for signature", http.StatusOK)
}

func (c *DepartureController) Complete(ctx echo.Context) error {
	var payload dto.CompleteDepartureDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.departureService.Complete(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Departure recorded", http.StatusCreated)
}

func (c *DepartureController) GetReturnRequests(ctx echo.Context) error {
	requests := c.departureService.GetReturnRequests(ctx.Request().Context())
	return utils.SuccessList(ctx, requests, len(requests), "Return requests fetched")
}

func (c *DepartureController) FindReturnRequest(ctx echo.Context) error {
	request, err := c.departureService.FindReturnRequest(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Return request found", http.StatusOK)
}

func (c *DepartureController) ProcessReturn(ctx echo.Context) error {
	request, err := c.departureService.ProcessReturn(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Return processed", http.StatusOK)
}
