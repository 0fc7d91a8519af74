package controllers

import (
	"net/http"

	"handover-system/internal/dto"
	"handover-system/internal/services"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompanyController struct {
	companyService services.CompanyServiceInterface
	logger         *zap.Logger
}

func NewCompanyController(companyService services.CompanyServiceInterface, logger *zap.Logger) *CompanyController {
	return &CompanyController{companyService: companyService, logger: logger}
}

func (c *CompanyController) GetCompanies(ctx echo.Context) error {
	companies := c.companyService.GetCompanies(ctx.Request().Context())
	return utils.SuccessList(ctx, companies, len(companies), "Companies fetched")
}

func (c *CompanyController) FindCompany(ctx echo.Context) error {
	company, err := c.companyService.FindCompany(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, company, "Company found", http.StatusOK)
}

func (c *CompanyController) CreateCompany(ctx echo.Context) error {
	var payload dto.CreateCompanyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company, err := c.companyService.CreateCompany(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, company, "Company created", http.StatusCreated)
}

func (c *CompanyController) UpdateCompany(ctx echo.Context) error {
	var payload dto.UpdateCompanyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company, err := c.companyService.UpdateCompany(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, company, "Company updated", http.StatusOK)
}
