package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wastebank/ledger/internal/config"
	"github.com/wastebank/ledger/internal/database"
	"github.com/wastebank/ledger/internal/handlers"
	"github.com/wastebank/ledger/internal/logger"
	"github.com/wastebank/ledger/internal/repository"
	"github.com/wastebank/ledger/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	customerRepo := repository.NewCustomerRepository(db)
	officerRepo := repository.NewOfficerRepository(db)
	wasteTypeRepo := repository.NewWasteTypeRepository(db)
	collectorRepo := repository.NewCollectorRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	stockService := service.NewStockService(depositRepo, saleRepo)
	profitService := service.NewProfitService(depositRepo, saleRepo)

	handler := handlers.NewHandler(handlers.Services{
		Deposits:    service.NewDepositService(depositRepo, customerRepo, officerRepo, wasteTypeRepo),
		Withdrawals: service.NewWithdrawalService(withdrawalRepo, customerRepo, officerRepo),
		Sales:       service.NewSaleService(saleRepo, collectorRepo, wasteTypeRepo),
		Reports:     service.NewReportService(depositRepo, withdrawalRepo, saleRepo, customerRepo, officerRepo, collectorRepo, wasteTypeRepo),
		Dashboard:   service.NewDashboardService(customerRepo, officerRepo, wasteTypeRepo, depositRepo, withdrawalRepo, stockService, profitService),
		Customers:   service.NewCustomerService(customerRepo),
		Officers:    service.NewOfficerService(officerRepo),
		WasteTypes:  service.NewWasteTypeService(wasteTypeRepo),
		Collectors:  service.NewCollectorService(collectorRepo),
	})

	r := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

func (a *App) Run() error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
