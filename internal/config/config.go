package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"careme/internal/models"
	"careme/internal/prep"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`
	Planner    prep.PlannerConfig      `yaml:"planner"`
	Compliance models.ComplianceConfig `yaml:"compliance"`
	Data       struct {
		CatalogPath   string `yaml:"catalog_path"`
		RecipesPath   string `yaml:"recipes_path"`
		StandardsPath string `yaml:"standards_path"`
	} `yaml:"data"`
}

// DefaultConfig returns a runnable configuration with no files loaded
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Planner = prep.DefaultPlannerConfig()
	cfg.Compliance = models.DefaultComplianceConfig()
	return cfg
}

// Load reads a yaml configuration file over the defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
