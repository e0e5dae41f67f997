package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codeval-2025.net/internal/adapter/harness"
	"gitlab.com/codeval-2025.net/internal/adapter/postgres/reportstore"
	"gitlab.com/codeval-2025.net/internal/adapter/procexec"
	"gitlab.com/codeval-2025.net/internal/adapter/redis/reportcache"
	"gitlab.com/codeval-2025.net/internal/config"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/core/services/analysis"
	"gitlab.com/codeval-2025.net/internal/core/services/evaluate"
	logger2 "gitlab.com/codeval-2025.net/internal/global/logger"
	http2 "gitlab.com/codeval-2025.net/internal/http"
	"gitlab.com/codeval-2025.net/internal/languages"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting code evaluation service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	registry := languages.NewRegistry()
	if path := sysCfg.EvaluatorConfig.LanguageCatalogPath; path != "" {
		if err := registry.LoadCatalog(path); err != nil {
			logger.Error("Failed to load language catalog", "path", path, "error", err)
			os.Exit(1)
		}
	}

	// SECONDARY PORTS
	harnessBuilder := harness.NewBuilder()
	executor := procexec.NewLocalCommandExecutor()
	runner := procexec.NewRunner(registry, executor, logger)

	var reportStore secondary.ReportStore
	if sysCfg.PostgresConfig.Enabled {
		db, err := setupDatabase(sysCfg.PostgresConfig.Url)
		if err != nil {
			logger.Error("Failed to set up database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		reportStore = reportstore.NewReportStore(db, logger)
	}

	var reportCache secondary.ReportCache
	if sysCfg.RedisConfig.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     sysCfg.RedisConfig.Url,
			Password: sysCfg.RedisConfig.Password,
			DB:       sysCfg.RedisConfig.DB,
		})
		defer redisClient.Close()
		reportCache = reportcache.NewReportCache(redisClient, logger)
	}

	// services
	evalSvc := evaluate.NewEvaluationService(
		harnessBuilder,
		runner,
		analysis.NewQualityScanner(),
		analysis.NewSuspicionScanner(),
		logger,
		sysCfg.EvaluatorConfig.ScratchRoot,
	)
	serviceProvider := http2.NewServiceProvider(evalSvc, reportStore, reportCache)

	// server
	httServer := http2.NewServer("codeEvaluator", *serviceProvider, sysCfg.ServerConfig, sysCfg.JwtConfig, logger)
	if err := httServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(connStr string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := "local"
	if len(os.Args) > 1 {
		environment = os.Args[1]
	}

	if err := godotenv.Load(environment + ".env"); err != nil {
		log.Printf("No %s.env file found, using process environment", environment)
	}
}
