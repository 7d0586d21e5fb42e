// Command server runs the khata HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"khata/internal/config"
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
	v1 "khata/internal/infrastructure/http/v1"
	"khata/internal/infrastructure/storage/sqlite"
	"khata/internal/infrastructure/storage/sqlite/auth_repo"
	"khata/internal/infrastructure/storage/sqlite/catalog_repo"
	"khata/internal/infrastructure/storage/sqlite/ledger_repo"
	"khata/internal/infrastructure/storage/sqlite/report_repo"
	"khata/internal/infrastructure/storage/sqlite/sales_repo"
	"khata/internal/infrastructure/storage/sqlite/settings_repo"
	"khata/pkg/calendar"
	"khata/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(context.Background(), "load config", "error", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		logger.Fatal(context.Background(), "init logger", "error", err)
	}

	ctx := logger.WithLogger(context.Background(), log)

	if err := run(ctx, cfg, log); err != nil {
		logger.Fatal(ctx, "server failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	txManager := sqlite.NewTxManager(store)

	// Repositories
	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	partnerRepo := catalog_repo.NewPartnerRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	phoneRepo := catalog_repo.NewPhoneRepo(txManager)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	ledgerRepo := ledger_repo.NewLedgerRepo(txManager)
	salesRepo := sales_repo.NewSalesRepo(txManager)
	reportRepo := report_repo.NewReportRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)
	settingsRepo := settings_repo.NewSettingsRepo(txManager)

	// Services
	jwtConfig := auth.DefaultJWTConfig(cfg.JWTSecret)
	jwtConfig.AccessTokenTTL = cfg.AccessTokenTTL
	jwtService := auth.NewJWTService(jwtConfig)
	authService := auth.NewService(userRepo, jwtService, auth.DefaultServiceConfig())

	inventoryService := inventory.NewService(productRepo, phoneRepo)
	ledgerService := ledger.NewService(ledgerRepo, txManager)
	salesService := sales.NewService(salesRepo, inventoryService, ledgerService, txManager)
	reportsService := reports.NewService(reportRepo, calendar.ToGregorian)

	if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}

	router := v1.NewRouter(v1.RouterConfig{
		Logger:        log,
		Store:         store,
		DataDir:       cfg.DataDir,
		DateConverter: calendar.ToGregorian,
		JWTValidator:  jwtService,

		AuthService:      authService,
		CustomerService:  customer.NewService(customerRepo),
		PartnerService:   partner.NewService(partnerRepo),
		ProductService:   product.NewService(productRepo),
		PhoneService:     phone.NewService(phoneRepo),
		CategoryService:  category.NewService(categoryRepo),
		InventoryService: inventoryService,
		LedgerService:    ledgerService,
		SalesService:     salesService,
		ReportsService:   reportsService,
		SettingsService:  settings.NewService(settingsRepo),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", cfg.AppAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Infow("server stopped")
	return nil
}
