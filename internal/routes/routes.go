package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-system/internal/controllers"
	"handover-system/internal/repositories"
	"handover-system/internal/services"
	"handover-system/pkg/config"
)

// InitRouter builds the full dependency graph: repositories over the
// shared store, services on top, controllers, then the route files.
func InitRouter(e *echo.Echo, store *repositories.Store, extractor services.TextExtractor, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	companyRepo := repositories.NewCompanyRepository(store)
	userRepo := repositories.NewUserRepository(store)
	equipmentRepo := repositories.NewEquipmentRepository(store)
	collaboratorRepo := repositories.NewCollaboratorRepository(store)
	handoverRepo := repositories.NewHandoverRepository(store)
	returnRepo := repositories.NewReturnRepository(store)

	companyService := services.NewCompanyService(companyRepo, logger)
	userService := services.NewUserService(userRepo, companyRepo, equipmentRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, userRepo, collaboratorRepo, companyRepo, handoverRepo, logger)
	importService := services.NewImportService(equipmentRepo, logger)
	ocrService := services.NewOCRService(extractor, equipmentRepo, logger)
	onboardingService := services.NewOnboardingService(collaboratorRepo, equipmentRepo, handoverRepo, companyRepo, logger)
	departureService := services.NewDepartureService(collaboratorRepo, equipmentRepo, returnRepo, handoverRepo, logger)
	profileService := services.NewProfileService(collaboratorRepo, equipmentRepo)
	exportService := services.NewExportService(equipmentRepo, userRepo, companyRepo, collaboratorRepo, handoverRepo)

	companyController := controllers.NewCompanyController(companyService, logger)
	userController := controllers.NewUserController(userService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, importService, ocrService, logger)
	collaboratorController := controllers.NewCollaboratorController(onboardingService, logger)
	departureController := controllers.NewDepartureController(departureService, logger)
	profileController := controllers.NewProfileController(profileService, logger)
	handoverController := controllers.NewHandoverController(handoverRepo, logger)
	reportController := controllers.NewReportController(exportService, logger)

	runCompanyRouter(api, companyController)
	runUserRouter(api, userController)
	runEquipmentRouter(api, equipmentController, cfg)
	runCollaboratorRouter(api, collaboratorController)
	runDepartureRouter(api, departureController)
	runProfileRouter(api, profileController)
	runHandoverRouter(api, handoverController)
	runReportRouter(api, reportController)
	api.GET("/references", controllers.GetReferences)

	logger.Info("routes registered")
}
