package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"careme/internal/api"
	"careme/internal/config"
	"careme/internal/models"
	"careme/internal/monitoring"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	catalog, recipes, standards, err := loadData(cfg)
	if err != nil {
		log.Fatalf("Failed to load planning data: %v", err)
	}
	log.Printf("Loaded %d catalog items, %d recipes, %d standard rules",
		len(catalog), len(recipes), len(standards))

	metrics := monitoring.NewMetricsCollector()
	plannerAPI := api.NewPlannerAPI(catalog, recipes, standards, cfg.Compliance, cfg.Planner, metrics)

	go startMetricsServer(cfg.Server.MetricsPort, metrics)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: plannerAPI.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// loadConfig loads the yaml configuration, falling back to defaults
// when no file exists at the given path
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("No config file at %s, using defaults", path)
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// loadData loads the catalog, recipe table, and labor standards named
// by the configuration. Missing paths load as empty tables so the
// compliance and merge endpoints still work on a bare install.
func loadData(cfg *config.Config) (models.YieldCatalog, map[string]models.Recipe, []models.StandardRule, error) {
	catalog := models.YieldCatalog{}
	recipes := map[string]models.Recipe{}
	var standards []models.StandardRule

	var err error
	if cfg.Data.CatalogPath != "" {
		if catalog, err = config.LoadCatalog(cfg.Data.CatalogPath); err != nil {
			return nil, nil, nil, err
		}
	}
	if cfg.Data.RecipesPath != "" {
		if recipes, err = config.LoadRecipes(cfg.Data.RecipesPath); err != nil {
			return nil, nil, nil, err
		}
	}
	if cfg.Data.StandardsPath != "" {
		if standards, err = config.LoadStandards(cfg.Data.StandardsPath); err != nil {
			return nil, nil, nil, err
		}
	}
	return catalog, recipes, standards, nil
}

func startMetricsServer(port int, metrics *monitoring.MetricsCollector) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
