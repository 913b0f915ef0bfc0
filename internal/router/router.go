package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Retrend821/inventory-saas-sub000/internal/config"
	"github.com/Retrend821/inventory-saas-sub000/internal/csvimport"
	"github.com/Retrend821/inventory-saas-sub000/internal/handler"
	"github.com/Retrend821/inventory-saas-sub000/internal/middleware"
	"github.com/Retrend821/inventory-saas-sub000/internal/model"
	"github.com/Retrend821/inventory-saas-sub000/internal/normalize"
	"github.com/Retrend821/inventory-saas-sub000/internal/repository"
	"github.com/Retrend821/inventory-saas-sub000/internal/service"
	"github.com/Retrend821/inventory-saas-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	bulkRepo := repository.NewBulkRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	settingRepo := repository.NewCommissionSettingRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)
	norm := normalize.Default()
	mapper := csvimport.NewMapper(norm)

	authSvc := service.NewAuthService(userRepo, cfg)
	inventorySvc := service.NewInventoryService(inventoryRepo, settingRepo, norm, dispatcher)
	importSvc := service.NewImportService(inventoryRepo, mapper, dispatcher, cfg.ImportBatchSize, cfg.ImportReportEmail)
	bulkSvc := service.NewBulkService(bulkRepo, dispatcher)
	masterSvc := service.NewMasterService(platformRepo, supplierRepo)
	settingsSvc := service.NewSettingsService(settingRepo, dispatcher)
	summarySvc := service.NewSummaryService(summaryRepo, inventoryRepo, bulkRepo)
	ledgerSvc := service.NewLedgerService(inventoryRepo, platformRepo, supplierRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	importH := handler.NewImportHandler(importSvc)
	bulkH := handler.NewBulkHandler(bulkSvc)
	mastersH := handler.NewMastersHandler(masterSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	summaryH := handler.NewSummaryHandler(summarySvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleEditor, model.RoleViewer)
	editor := middleware.RequireRole(model.RoleAdmin, model.RoleEditor)
	admin := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		inv := v1.Group("/inventory")
		{
			inv.GET("", anyRole, inventoryH.List)
			inv.GET("/returns", anyRole, inventoryH.ListReturns)
			inv.GET("/:id", anyRole, inventoryH.Get)
			inv.POST("", editor, inventoryH.Create)
			inv.PATCH("/:id/cell", editor, inventoryH.EditCell)
			inv.POST("/:id/return", editor, inventoryH.MarkReturn)
			inv.DELETE("/:id", editor, inventoryH.Delete)

			// CSV intake: inspect suggests, commit writes
			inv.POST("/import/inspect", editor, importH.Inspect)
			inv.POST("/import/commit", editor, importH.Commit)
			// JSON intake for the mail-scraper job
			inv.POST("/import/api", editor, importH.Ingest)
		}

		bulk := v1.Group("/bulk/purchases")
		{
			bulk.GET("", anyRole, bulkH.ListPurchases)
			bulk.GET("/:id", anyRole, bulkH.GetPurchase)
			bulk.POST("", editor, bulkH.CreatePurchase)
			bulk.PUT("/:id", editor, bulkH.UpdatePurchase)
			bulk.DELETE("/:id", editor, bulkH.DeletePurchase)
			bulk.POST("/:id/sales", editor, bulkH.AddSale)
		}
		v1.PUT("/bulk/sales/:sale_id", editor, bulkH.UpdateSale)
		v1.DELETE("/bulk/sales/:sale_id", editor, bulkH.DeleteSale)

		v1.GET("/summary/sales", anyRole, summaryH.List)
		v1.POST("/summary/rebuild", admin, summaryH.Rebuild)

		v1.GET("/platforms", anyRole, mastersH.ListPlatforms)
		platforms := v1.Group("/platforms", admin)
		{
			platforms.POST("", mastersH.CreatePlatform)
			platforms.PUT("/:id", mastersH.UpdatePlatform)
			platforms.DELETE("/:id", mastersH.DeactivatePlatform)
		}

		v1.GET("/suppliers", anyRole, mastersH.ListSuppliers)
		suppliers := v1.Group("/suppliers", admin)
		{
			suppliers.POST("", mastersH.CreateSupplier)
			suppliers.PUT("/:id", mastersH.UpdateSupplier)
			suppliers.DELETE("/:id", mastersH.DeactivateSupplier)
		}

		settings := v1.Group("/settings/commission", admin)
		{
			settings.GET("", settingsH.List)
			settings.PUT("", settingsH.Upsert)
			settings.DELETE("/:year_month", settingsH.Delete)
		}

		v1.GET("/ledger/pdf", admin, ledgerH.DownloadPDF)

		users := v1.Group("/users", admin)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
