// Package main is the entry point for the Stockfolio portfolio tracker.
// It wires the configuration, databases, market data client and HTTP server,
// then blocks until the process receives a shutdown signal.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/stockfolio/internal/clients/yahoo"
	"github.com/aristath/stockfolio/internal/config"
	"github.com/aristath/stockfolio/internal/database"
	"github.com/aristath/stockfolio/internal/modules/portfolio"
	portfoliohandlers "github.com/aristath/stockfolio/internal/modules/portfolio/handlers"
	"github.com/aristath/stockfolio/internal/modules/stocks"
	stockshandlers "github.com/aristath/stockfolio/internal/modules/stocks/handlers"
	"github.com/aristath/stockfolio/internal/modules/trading"
	tradinghandlers "github.com/aristath/stockfolio/internal/modules/trading/handlers"
	"github.com/aristath/stockfolio/internal/reliability"
	"github.com/aristath/stockfolio/internal/server"
	"github.com/aristath/stockfolio/internal/universe"
	"github.com/aristath/stockfolio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Stockfolio")

	// Portfolio database holds durable state: holdings and the trade ledger
	portfolioDB, err := database.New(database.Config{
		Path:    cfg.DatabasePath,
		Profile: database.ProfileStandard,
		Name:    "portfolio",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open portfolio database")
	}
	defer portfolioDB.Close()

	// Cache database holds ephemeral quote snapshots
	cacheDB, err := database.New(database.Config{
		Path:    cfg.CacheDatabasePath,
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	if err := portfolio.InitSchema(portfolioDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize holdings schema")
	}
	if err := trading.InitSchema(portfolioDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize trades schema")
	}
	if err := stocks.InitCacheSchema(cacheDB.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize quote cache schema")
	}

	// Wire services
	symbols := universe.New(log)
	yahooClient := yahoo.NewClient(log)

	holdingRepo := portfolio.NewHoldingRepository(portfolioDB.Conn(), log)
	tradeRepo := trading.NewTradeRepository(portfolioDB.Conn(), log)
	tradingService := trading.NewService(portfolioDB.Conn(), holdingRepo, tradeRepo, log)

	quoteCache := stocks.NewQuoteCache(cacheDB.Conn(), stocks.DefaultQuoteTTL, log)
	stocksService := stocks.NewService(symbols, yahooClient, quoteCache, log)

	// Cloud backups are optional; the endpoint reports unavailable when off
	var backupService *reliability.BackupService
	if cfg.Backup != nil {
		s3Client, err := reliability.NewS3Client(context.Background(), cfg.Backup, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize backup client")
		}
		backupService = reliability.NewBackupService(portfolioDB, s3Client, log)
		log.Info().Str("bucket", cfg.Backup.Bucket).Msg("Cloud backups enabled")
	}

	srv := server.New(server.Config{
		Log:               log,
		PortfolioDB:       portfolioDB,
		Config:            cfg,
		PortfolioHandlers: portfoliohandlers.NewHandler(holdingRepo, log),
		StocksHandlers:    stockshandlers.NewHandler(stocksService, log),
		TradingHandlers:   tradinghandlers.NewHandler(tradingService, symbols, log),
		BackupService:     backupService,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Int("port", cfg.Port).Int("universe_size", symbols.Size()).Msg("Stockfolio ready")

	// Block until interrupted
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
