// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"khata/internal/domain/auth"
	"khata/internal/domain/catalogs/category"
	"khata/internal/domain/catalogs/customer"
	"khata/internal/domain/catalogs/partner"
	"khata/internal/domain/catalogs/phone"
	"khata/internal/domain/catalogs/product"
	"khata/internal/domain/inventory"
	"khata/internal/domain/ledger"
	"khata/internal/domain/reports"
	"khata/internal/domain/sales"
	"khata/internal/domain/settings"
	"khata/internal/infrastructure/http/v1/handlers"
	"khata/internal/infrastructure/http/v1/middleware"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/pkg/logger"
)

// RouterConfig holds everything the router wires together.
type RouterConfig struct {
	Logger  *logger.Logger
	Store   *sqlite.Store
	DataDir string

	// DateConverter maps Bikram Sambat dates onto Gregorian instants.
	DateConverter handlers.DateConverter

	JWTValidator middleware.JWTValidator

	AuthService      *auth.Service
	CustomerService  *customer.Service
	PartnerService   *partner.Service
	ProductService   *product.Service
	PhoneService     *phone.Service
	CategoryService  *category.Service
	InventoryService *inventory.Service
	LedgerService    *ledger.Service
	SalesService     *sales.Service
	ReportsService   *reports.Service
	SettingsService  *settings.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Store)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	authHandler := handlers.NewAuthHandler(cfg.AuthService)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerAuthRoutes(protected, authHandler)
		registerCatalogRoutes(protected, cfg)
		registerLedgerRoutes(protected, cfg)
		registerSaleRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
		registerAdminRoutes(protected, cfg)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST("/auth/change-password", h.ChangePassword)

	admin := rg.Group("/auth", middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/register", h.Register)
		admin.GET("/users", h.Users)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}

func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	customers := handlers.NewCustomerHandler(cfg.CustomerService, cfg.LedgerService)
	group := rg.Group("/customers")
	{
		group.POST("", customers.Create)
		group.GET("", customers.List)
		group.GET("/:id", customers.Get)
		group.PUT("/:id", customers.Update)
		group.DELETE("/:id", customers.Delete)
	}

	partners := handlers.NewPartnerHandler(cfg.PartnerService, cfg.LedgerService)
	group = rg.Group("/partners")
	{
		group.POST("", partners.Create)
		group.GET("", partners.List)
		group.GET("/:id", partners.Get)
		group.PUT("/:id", partners.Update)
		group.DELETE("/:id", partners.Delete)
	}

	products := handlers.NewProductHandler(cfg.ProductService)
	group = rg.Group("/products")
	{
		group.POST("", products.Create)
		group.GET("", products.List)
		group.GET("/:id", products.Get)
		group.PUT("/:id", products.Update)
		group.DELETE("/:id", products.Delete)
	}

	phones := handlers.NewPhoneHandler(cfg.PhoneService)
	group = rg.Group("/phones")
	{
		group.POST("", phones.Create)
		group.GET("", phones.List)
		group.GET("/:id", phones.Get)
		group.PUT("/:id", phones.Update)
		group.DELETE("/:id", phones.Delete)
	}

	categories := handlers.NewCategoryHandler(cfg.CategoryService)
	group = rg.Group("/categories")
	{
		group.POST("", categories.Create)
		group.GET("", categories.List)
		group.DELETE("/:id", categories.Delete)
	}

	inv := handlers.NewInventoryHandler(cfg.InventoryService)
	rg.GET("/inventory/sellable", inv.Sellable)
}

func registerLedgerRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	customerLedger := handlers.NewLedgerHandler(cfg.LedgerService, ledger.KindCustomer, cfg.DateConverter)
	group := rg.Group("/customers/:id")
	{
		group.GET("/ledger", customerLedger.Entries)
		group.POST("/ledger", customerLedger.PostEntry)
		group.GET("/balance", customerLedger.Balance)
	}

	partnerLedger := handlers.NewLedgerHandler(cfg.LedgerService, ledger.KindPartner, cfg.DateConverter)
	group = rg.Group("/partners/:id")
	{
		group.GET("/ledger", partnerLedger.Entries)
		group.POST("/ledger", partnerLedger.PostEntry)
		group.GET("/balance", partnerLedger.Balance)
	}
}

func registerSaleRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	h := handlers.NewSalesHandler(cfg.SalesService, cfg.DateConverter)
	group := rg.Group("/sales")
	{
		group.POST("", h.Record)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}

func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	h := handlers.NewReportsHandler(cfg.ReportsService)
	group := rg.Group("/reports")
	{
		group.GET("/dashboard", h.Dashboard)
		group.GET("/profit", h.Profit)
		group.GET("/debtors", h.Debtors)
		group.GET("/creditors", h.Creditors)
		group.GET("/top-customers", h.TopCustomers)
		group.GET("/top-partners", h.TopPartners)
	}
}

func registerAdminRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	settingsHandler := handlers.NewSettingsHandler(cfg.SettingsService, cfg.DataDir)
	group := rg.Group("/settings")
	{
		group.GET("", settingsHandler.Get)
		group.PUT("", middleware.RequireRole(auth.RoleAdmin), settingsHandler.Update)
		group.GET("/logo", settingsHandler.Logo)
		group.POST("/logo", middleware.RequireRole(auth.RoleAdmin), settingsHandler.UploadLogo)
	}

	maintenance := handlers.NewMaintenanceHandler(cfg.Store)
	group = rg.Group("/maintenance", middleware.RequireRole(auth.RoleAdmin))
	{
		group.GET("/backup", maintenance.Backup)
		group.POST("/restore", maintenance.Restore)
	}
}
