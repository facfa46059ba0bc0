package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"changemoney-backend/internal/config"
	"changemoney-backend/internal/handler"
	"changemoney-backend/internal/ports"
	"changemoney-backend/internal/repository"
	"changemoney-backend/internal/server"
	"changemoney-backend/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, checker := buildStore(cfg, logger)

	// services
	orderSvc := service.NewOrderService(store)
	reportSvc := service.NewReportService(store)
	authSvc := service.AuthService{Config: cfg}

	// handlers
	healthHandler := handler.HealthHandler{Store: checker}
	homeHandler := handler.HomeHandler{ZaloPhone: cfg.ZaloPhone}
	authHandler := handler.AuthHandler{Service: authSvc}
	orderHandler := handler.OrderHandler{Orders: orderSvc, ZaloPhone: cfg.ZaloPhone}
	adminHandler := handler.AdminHandler{Orders: orderSvc, Reports: reportSvc}
	exportHandler := handler.ExportHandler{Orders: orderSvc, ExportFile: cfg.ExportFile}

	router := server.NewRouter(cfg, logger, healthHandler, homeHandler, authHandler, orderHandler, adminHandler, exportHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// buildStore selects the persistence backend: a plain JSON file, or the
// GitHub-contents blob fronted by a local cache file.
func buildStore(cfg config.Config, logger *slog.Logger) (ports.OrderStore, ports.HealthChecker) {
	switch cfg.StoreBackend {
	case config.BackendGitHub:
		remote := repository.NewGitHubOrderRepository(cfg.GitHubToken, cfg.GitHubRepo, cfg.GitHubFilePath, cfg.GitHubAPIURL)
		cache := repository.NewFileOrderRepository(cfg.CacheFile)
		cached := repository.NewCachedOrderRepository(remote, cache, logger)
		logger.Info("using github order store", "repo", cfg.GitHubRepo, "path", cfg.GitHubFilePath)
		return cached, cached
	default:
		store := repository.NewFileOrderRepository(cfg.OrdersFile)
		logger.Info("using file order store", "path", cfg.OrdersFile)
		return store, store
	}
}
