package routes

import (
	"time"

	"maintenance-portal-backend/internal/api/handlers"
	"maintenance-portal-backend/internal/api/middleware"
	"maintenance-portal-backend/internal/config"
	"maintenance-portal-backend/internal/logger"
	"maintenance-portal-backend/internal/repository"
	"maintenance-portal-backend/internal/service"
	"maintenance-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, files storage.FileStorage, log *logger.Logger) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.RateLimitPerSecond > 0 {
		router.Use(middleware.RateLimit(float64(cfg.RateLimitPerSecond), cfg.RateLimitBurst))
	}

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	equipmentRepo := repository.NewEquipmentRepository(db)
	groupRepo := repository.NewEquipmentGroupRepository(db)
	membershipRepo := repository.NewGroupMembershipRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	docGroupRepo := repository.NewDocumentGroupRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	serviceRepo := repository.NewFacilityServiceRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	taskRepo := repository.NewMaintenanceTaskRepository(db)
	interventionRepo := repository.NewInterventionRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	subscriptionRepo := repository.NewPushSubscriptionRepository(db)

	// Initialize services
	membershipService := service.NewMembershipService(equipmentRepo, groupRepo, documentRepo, membershipRepo, docGroupRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, buildingRepo, serviceRepo, locationRepo, membershipService, validator)
	groupService := service.NewEquipmentGroupService(groupRepo, membershipService, validator, log)
	documentService := service.NewDocumentService(documentRepo, docGroupRepo, files, validator)
	printLayoutService := service.NewPrintLayoutService(validator)
	selectorService := service.NewSelectorService(equipmentRepo)
	importerService := service.NewImporterService(equipmentRepo, groupRepo, buildingRepo, serviceRepo, locationRepo, membershipService, log)
	exporterService := service.NewExporterService(equipmentRepo, groupRepo, buildingRepo, serviceRepo, locationRepo)
	maintenanceService := service.NewMaintenanceService(taskRepo, equipmentRepo, validator)
	interventionService := service.NewInterventionService(interventionRepo, equipmentRepo, taskRepo, validator)
	staffService := service.NewStaffService(staffRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo, subscriptionRepo, validator)
	referenceService := service.NewReferenceService(buildingRepo, serviceRepo, locationRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService, selectorService)
	groupHandler := handlers.NewGroupHandler(groupService, membershipService)
	documentHandler := handlers.NewDocumentHandler(documentService, membershipService)
	printLayoutHandler := handlers.NewPrintLayoutHandler(printLayoutService)
	transferHandler := handlers.NewTransferHandler(importerService, exporterService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	interventionHandler := handlers.NewInterventionHandler(interventionService)
	staffHandler := handlers.NewStaffHandler(staffService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded document files
	router.Static(cfg.UploadPublicURL, files.Root())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Equipment routes
		equipments := v1.Group("/equipments")
		{
			equipments.GET("", equipmentHandler.ListEquipments)
			equipments.POST("", equipmentHandler.CreateEquipment)
			equipments.GET("/selector", equipmentHandler.SelectEquipments)
			equipments.GET("/export", transferHandler.ExportEquipments)
			equipments.GET("/import-template", transferHandler.ImportTemplate)
			equipments.POST("/import", transferHandler.ImportEquipments)
			equipments.GET("/:id", equipmentHandler.GetEquipment)
			equipments.PUT("/:id", equipmentHandler.UpdateEquipment)
			equipments.DELETE("/:id", equipmentHandler.DeleteEquipment)
		}

		// Group routes
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.GET("/:id/members", groupHandler.GetGroupMembers)
			groups.POST("/:id/members", groupHandler.UpdateGroupMembers)
			groups.POST("/:id/propagate-description", groupHandler.PropagateDescription)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.ListDocuments)
			documents.POST("", documentHandler.CreateDocument)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
			documents.GET("/:id/groups", documentHandler.GetDocumentGroups)
			documents.POST("/:id/groups", documentHandler.UpdateDocumentGroups)
		}

		// Print layout route
		v1.POST("/print-layout", printLayoutHandler.ComputeLayout)

		// Maintenance task routes
		tasks := v1.Group("/maintenance-tasks")
		{
			tasks.GET("", maintenanceHandler.ListTasks)
			tasks.POST("", maintenanceHandler.CreateTask)
			tasks.GET("/:id", maintenanceHandler.GetTask)
			tasks.PUT("/:id", maintenanceHandler.UpdateTask)
			tasks.DELETE("/:id", maintenanceHandler.DeleteTask)
			tasks.POST("/:id/complete", maintenanceHandler.CompleteTask)
		}

		// Intervention routes
		interventions := v1.Group("/interventions")
		{
			interventions.GET("", interventionHandler.ListInterventions)
			interventions.POST("", interventionHandler.CreateIntervention)
			interventions.GET("/:id", interventionHandler.GetIntervention)
			interventions.PUT("/:id", interventionHandler.UpdateIntervention)
			interventions.DELETE("/:id", interventionHandler.DeleteIntervention)
			interventions.POST("/:id/technicians", interventionHandler.AddTechnicianEntry)
		}

		// Staff routes
		staff := v1.Group("/staff")
		{
			staff.GET("", staffHandler.ListStaffMembers)
			staff.POST("", staffHandler.CreateStaffMember)
			staff.GET("/:id", staffHandler.GetStaffMember)
			staff.PUT("/:id", staffHandler.UpdateStaffMember)
			staff.DELETE("/:id", staffHandler.DeleteStaffMember)
			staff.POST("/:id/certifications", staffHandler.AddCertification)
		}

		// Certification routes
		certifications := v1.Group("/certifications")
		{
			certifications.PUT("/:id", staffHandler.UpdateCertification)
			certifications.DELETE("/:id", staffHandler.DeleteCertification)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/read-all", notificationHandler.MarkAllNotificationsRead)
			notifications.POST("/subscriptions", notificationHandler.Subscribe)
			notifications.DELETE("/subscriptions", notificationHandler.Unsubscribe)
			notifications.POST("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Reference data routes. Lists are cached briefly since they
		// feed dropdowns on every form.
		referenceCache := middleware.Cache(30 * time.Second)
		buildings := v1.Group("/buildings")
		{
			buildings.GET("", referenceCache, referenceHandler.ListBuildings)
			buildings.POST("", referenceHandler.CreateBuilding)
			buildings.DELETE("/:id", referenceHandler.DeleteBuilding)
		}
		services := v1.Group("/services")
		{
			services.GET("", referenceCache, referenceHandler.ListServices)
			services.POST("", referenceHandler.CreateService)
			services.DELETE("/:id", referenceHandler.DeleteService)
		}
		locations := v1.Group("/locations")
		{
			locations.GET("", referenceCache, referenceHandler.ListLocations)
			locations.POST("", referenceHandler.CreateLocation)
			locations.DELETE("/:id", referenceHandler.DeleteLocation)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
