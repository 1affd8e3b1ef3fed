package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. A path in
// TRIP_ANALYTICS_CONFIG wins over the default candidates; when no config file
// exists at all, the defaults apply and datasets come from flags.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	if p := os.Getenv("TRIP_ANALYTICS_CONFIG"); p != "" {
		paths = []string{p}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if os.Getenv("TRIP_ANALYTICS_CONFIG") != "" {
			// an explicitly requested config must exist
			return err
		}
		data = nil
	}
	return Apply(data)
}

// Apply parses and validates raw YAML and installs it as the active config.
func Apply(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	// the top-level dataset block is optional; if present validate it
	if cfg.Dataset != (DatasetConfig{}) {
		if err := v.Struct(cfg.Dataset); err != nil {
			return err
		}
	}
	for _, d := range cfg.Datasets {
		if err := v.Struct(d); err != nil {
			return err
		}
	}
	if err := v.Struct(cfg.Report); err != nil {
		return err
	}
	Config = cfg
	if Config.Report.TopZones == 0 {
		Config.Report.TopZones = 10
	}
	if Config.Report.TopSlots == 0 {
		Config.Report.TopSlots = 10
	}
	if Config.Report.Format == "" {
		Config.Report.Format = "text"
	}
	return nil
}

// SelectDataset chooses a dataset by name; fallback to first; if none, use
// the top-level dataset block.
func SelectDataset(name string) DatasetConfig {
	if name != "" {
		for _, d := range Config.Datasets {
			if d.Name == name {
				return d
			}
		}
	}
	if len(Config.Datasets) > 0 {
		return Config.Datasets[0]
	}
	return Config.Dataset
}
