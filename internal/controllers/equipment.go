package controllers

import (
	"io"
	"net/http"

	"handover-system/internal/dto"
	"handover-system/internal/services"
	"handover-system/pkg/apperrors"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	importService    services.ImportServiceInterface
	ocrService       services.OCRServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	importService services.ImportServiceInterface,
	ocrService services.OCRServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		importService:    importService,
		ocrService:       ocrService,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	equipment, total, err := c.equipmentService.GetEquipment(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessList(ctx, equipment, total, "Equipment fetched")
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	equipment, err := c.equipmentService.FindEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment found", http.StatusOK)
}

func (c *EquipmentController) FindBySerial(ctx echo.Context) error {
	serial := ctx.QueryParam("serial")
	if serial == "" {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("query parameter 'serial' is required"), c.logger)
	}

	equipment, err := c.equipmentService.FindBySerial(ctx.Request().Context(), serial)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment found", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment created", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment updated", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Equipment deleted", http.StatusOK)
}

func (c *EquipmentController) AssignEquipment(ctx echo.Context) error {
	var payload dto.AssignEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.AssignEquipment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment assigned", http.StatusOK)
}

func (c *EquipmentController) UnassignEquipment(ctx echo.Context) error {
	equipment, err := c.equipmentService.UnassignEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment returned to pool", http.StatusOK)
}

func (c *EquipmentController) SetMaintenance(ctx echo.Context) error {
	equipment, err := c.equipmentService.SetMaintenance(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment moved to maintenance", http.StatusOK)
}

func (c *EquipmentController) RetireEquipment(ctx echo.Context) error {
	equipment, err := c.equipmentService.RetireEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, equipment, "Equipment retired", http.StatusOK)
}

// ImportCSV accepts either a multipart file upload under "file" or a raw
// CSV body.
func (c *EquipmentController) ImportCSV(ctx echo.Context) error {
	var reader io.ReadCloser

	if file, err := ctx.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		reader = src
	} else {
		reader = ctx.Request().Body
	}
	defer reader.Close()

	result, err := c.importService.ImportCSV(ctx.Request().Context(), reader)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Import finished", http.StatusOK)
}

// OCRSearch extracts serial-number candidates from an uploaded label photo
// and reports a store match when one of them is a known serial.
func (c *EquipmentController) OCRSearch(ctx echo.Context) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("an image upload is required"), c.logger)
	}
	src, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.ocrService.ScanSerial(ctx.Request().Context(), image, nil)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Scan finished", http.StatusOK)
}
