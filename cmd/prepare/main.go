package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/domain/usecase/features"

	csvadapter "github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/csv"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credit-feature-pipeline/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Compile the keyword category rules
	rules, err := config.LoadCategoryRules(cfg.Input.CategoriesPath)
	if err != nil {
		appLogger.Error("Failed to load category rules", map[string]any{
			"path":  cfg.Input.CategoriesPath,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	classifier, err := features.NewClassifier(rules)
	if err != nil {
		appLogger.Error("Failed to compile category rules", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Input adapters
	transactions := csvadapter.NewTransactionReader(cfg.Input.TransactionsPath, appLogger)
	labels := csvadapter.NewLabelReader(cfg.Input.LabelsPath, appLogger)

	// The CSV artifact is always produced; the Postgres feature store is
	// an additional sink when enabled.
	if err := os.MkdirAll(filepath.Dir(cfg.Output.FeaturesPath), 0o755); err != nil {
		appLogger.Error("Failed to create output directory", map[string]any{
			"path":  cfg.Output.FeaturesPath,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	sinks := []persistence.FeatureSink{
		csvadapter.NewFeatureWriter(cfg.Output.FeaturesPath, appLogger),
	}

	if cfg.FeatureStore.Enabled {
		dbConfig := &database.Config{
			Host:            cfg.FeatureStore.Host,
			Port:            cfg.FeatureStore.Port,
			Username:        cfg.FeatureStore.Username,
			Password:        cfg.FeatureStore.Password,
			Database:        cfg.FeatureStore.Database,
			SSLMode:         cfg.FeatureStore.SSLMode,
			MaxOpenConns:    cfg.FeatureStore.MaxOpenConns,
			MaxIdleConns:    cfg.FeatureStore.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.FeatureStore.ConnMaxLifetimeMins) * time.Minute,
			QueryTimeout:    time.Duration(cfg.FeatureStore.QueryTimeoutSecs) * time.Second,
			LogLevel:        cfg.Logger.Level,
		}

		conn, err := database.NewConnection(dbConfig)
		if err != nil {
			appLogger.Error("Failed to connect to feature store", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer func() {
			_ = conn.Close()
		}()

		featureRepo := repository.NewFeatureRepository(conn.DB, tp, appLogger)
		if err := featureRepo.Migrate(context.Background()); err != nil {
			appLogger.Error("Failed to migrate feature store", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		sinks = append(sinks, featureRepo)
	}

	// Run the pipeline once
	service := features.NewService(transactions, labels, classifier, tp, appLogger, sinks...)
	if _, err := service.Run(context.Background()); err != nil {
		appLogger.Error("Pipeline run failed", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
