package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"handover-system/internal/services"
	"handover-system/pkg/utils"
)

type ReportController struct {
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewReportController(exportService services.ExportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{exportService: exportService, logger: logger}
}

// Inventory serves the full equipment export. The default is CSV;
// ?format=xlsx switches to a styled spreadsheet.
func (c *ReportController) Inventory(ctx echo.Context) error {
	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		header, rows := c.exportService.InventoryReport(ctx.Request().Context())
		return c.respondWithXLSX(ctx, "Inventaire", header, rows)
	}
	return respondWithCSV(ctx, "inventory", c.exportService.InventoryCSV(ctx.Request().Context()))
}

func (c *ReportController) CompanyEquipment(ctx echo.Context) error {
	csv, err := c.exportService.CompanyEquipmentCSV(ctx.Request().Context(), ctx.Param("companyId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondWithCSV(ctx, "company_equipment", csv)
}

func (c *ReportController) UserEquipment(ctx echo.Context) error {
	csv, err := c.exportService.UserEquipmentCSV(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return respondWithCSV(ctx, "user_equipment", csv)
}

func (c *ReportController) HandoverHistory(ctx echo.Context) error {
	return respondWithCSV(ctx, "handover_history", c.exportService.HandoverHistoryCSV(ctx.Request().Context()))
}

func respondWithCSV(ctx echo.Context, name, content string) error {
	fileName := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.String(http.StatusOK, content)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, sheet string, header []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &header)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCol, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(sheet, "A1", lastCol, style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := row
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 25)
	f.SetColWidth(sheet, "D", "D", 40)
	f.SetColWidth(sheet, "F", "G", 25)

	fileName := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
