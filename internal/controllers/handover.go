package controllers

import (
	"net/http"

	"handover-system/internal/repositories"
	"handover-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HandoverController exposes the movement history and the signed
// documents. Both are read-only over HTTP: records are created by the
// assignment and return flows, never directly.
type HandoverController struct {
	handoverRepository repositories.HandoverRepositoryInterface
	logger             *zap.Logger
}

func NewHandoverController(handoverRepository repositories.HandoverRepositoryInterface, logger *zap.Logger) *HandoverController {
	return &HandoverController{handoverRepository: handoverRepository, logger: logger}
}

func (c *HandoverController) GetHandovers(ctx echo.Context) error {
	handovers := c.handoverRepository.GetHandovers(ctx.Request().Context())
	return utils.SuccessList(ctx, handovers, len(handovers), "Handovers fetched")
}

func (c *HandoverController) GetDocuments(ctx echo.Context) error {
	documents := c.handoverRepository.GetDocuments(ctx.Request().Context())
	return utils.SuccessList(ctx, documents, len(documents), "Handover documents fetched")
}

func (c *HandoverController) FindDocument(ctx echo.Context) error {
	document, err := c.handoverRepository.FindDocument(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, document, "Handover document found", http.StatusOK)
}
