package controllers

import (
	"net/http"
	"strconv"

	"handover-system/internal/services"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
	logger         *zap.Logger
}

func NewProfileController(profileService services.ProfileServiceInterface, logger *zap.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

func (c *ProfileController) GetProfiles(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	var hasEquipment *bool
	if raw := ctx.QueryParam("has_equipment"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			hasEquipment = &v
		}
	}

	profiles, total := c.profileService.GetProfiles(ctx.Request().Context(), filter, hasEquipment)
	return utils.SuccessList(ctx, profiles, total, "Collaborators fetched")
}

func (c *ProfileController) FindProfile(ctx echo.Context) error {
	profile, err := c.profileService.FindProfile(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, profile, "Collaborator found", http.StatusOK)
}

func (c *ProfileController) ProfileEquipment(ctx echo.Context) error {
	equipment, err := c.profileService.ProfileEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessList(ctx, equipment, len(equipment), "Collaborator equipment fetched")
}
