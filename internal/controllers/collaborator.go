package controllers

import (
	"net/http"

	"handover-system/internal/dto"
	"handover-system/internal/services"
	"handover-system/pkg/apperrors"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CollaboratorController struct {
	onboardingService services.OnboardingServiceInterface
	logger            *zap.Logger
}

func NewCollaboratorController(onboardingService services.OnboardingServiceInterface, logger *zap.Logger) *CollaboratorController {
	return &CollaboratorController{onboardingService: onboardingService, logger: logger}
}

func (c *CollaboratorController) GetRequests(ctx echo.Context) error {
	requests := c.onboardingService.GetRequests(ctx.Request().Context())
	return utils.SuccessList(ctx, requests, len(requests), "Requests fetched")
}

func (c *CollaboratorController) FindRequest(ctx echo.Context) error {
	request, err := c.onboardingService.FindRequest(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Request found", http.StatusOK)
}

func (c *CollaboratorController) SubmitRequest(ctx echo.Context) error {
	var payload dto.CreateCollaboratorRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.onboardingService.Submit(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Onboarding request submitted", http.StatusCreated)
}

// Prefill serves the replacement flow: organizational and software fields
// of an existing collaborator, looked up by email.
func (c *CollaboratorController) Prefill(ctx echo.Context) error {
	email := ctx.QueryParam("email")
	if email == "" {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("query parameter 'email' is required"), c.logger)
	}

	prefill, err := c.onboardingService.PrefillFromEmail(ctx.Request().Context(), email)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, prefill, "Prefill data fetched", http.StatusOK)
}

func (c *CollaboratorController) ValidateRequest(ctx echo.Context) error {
	var payload dto.ValidateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.onboardingService.Validate(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Request validated", http.StatusOK)
}

func (c *CollaboratorController) AvailableEquipment(ctx echo.Context) error {
	equipment := c.onboardingService.AvailableEquipment(ctx.Request().Context(), ctx.Param("id"))
	return utils.SuccessList(ctx, equipment, len(equipment), "Available equipment fetched")
}

func (c *CollaboratorController) SelectEquipment(ctx echo.Context) error {
	var payload dto.SelectEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.onboardingService.SelectEquipment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Equipment selection recorded", http.StatusOK)
}

func (c *CollaboratorController) GenerateHandover(ctx echo.Context) error {
	draft, err := c.onboardingService.GenerateHandover(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, draft, "Handover ready for signature", http.StatusOK)
}

func (c *CollaboratorController) CompleteRequest(ctx echo.Context) error {
	var payload dto.CompleteRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	profile, err := c.onboardingService.Complete(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, profile, "Onboarding completed", http.StatusCreated)
}
