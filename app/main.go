package main

import (
	"context"
	"net/http"

	"handover-system/internal/repositories"
	"handover-system/internal/routes"
	"handover-system/pkg/apperrors"
	"handover-system/pkg/config"
	"handover-system/pkg/customvalidator"
	"handover-system/pkg/eventbus"
	applogger "handover-system/pkg/logger"
	"handover-system/pkg/textextract"
	"handover-system/pkg/utils"
	"handover-system/seeders"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RequestID())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Validator = customvalidator.New()

	bus := eventbus.New(logger)
	bus.Subscribe("equipment.updated", func(ctx context.Context, event eventbus.Event) error {
		if change, ok := event.(repositories.ChangeEvent); ok {
			logger.Debug("equipment changed", zap.String("id", change.ID))
		}
		return nil
	})

	store := repositories.NewStore(bus)
	seeders.Seed(store, logger)
	extractor := textextract.NewTesseractExtractor(logger)

	routes.InitRouter(e, store, extractor, logger, cfg)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
