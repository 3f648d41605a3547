package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/daystack/pkg/models"
)

// ConfigManager defines the interface for loading and validating the
// optional daystack configuration file.
type ConfigManager interface {
	LoadConfig() (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigManager using Viper to read an
// optional config.yaml from the base path.
type viperConfigManager struct {
	basePath string
}

// NewConfigManager creates a ConfigManager that reads config.yaml relative
// to basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultConfig returns a Config populated with the out-of-box defaults.
func defaultConfig() *models.Config {
	return &models.Config{
		CompletedCap: DefaultCompletedCap,
		LogEvents:    true,
		AccentColor:  "62",
	}
}

// LoadConfig reads config.yaml from the base path. A missing file returns
// defaults; a present but malformed file is an error so a typo does not
// silently reset the configuration.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("retention.completed_cap", cfg.CompletedCap)
	v.SetDefault("log.events", cfg.LogEvents)
	v.SetDefault("ui.accent_color", cfg.AccentColor)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config.yaml: %w", err)
	}

	cfg.CompletedCap = v.GetInt("retention.completed_cap")
	cfg.LogEvents = v.GetBool("log.events")
	cfg.AccentColor = v.GetString("ui.accent_color")

	return cfg, nil
}

// ValidateConfig checks the configuration for invalid values and returns a
// clear error message identifying every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.CompletedCap < 1 {
		errs = append(errs, fmt.Sprintf("retention.completed_cap must be at least 1, got %d", cfg.CompletedCap))
	}
	if cfg.AccentColor == "" {
		errs = append(errs, "ui.accent_color must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
