package kubera

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration, read from an optional YAML file
// with environment variable overrides. The environment names match the ones
// the original deployment scripts already export.
type Config struct {
	DataDir       string `yaml:"data_dir"`
	RetentionDays int    `yaml:"retention_days"`

	Kubera struct {
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
		Portfolio string `yaml:"portfolio"` // portfolio id; first portfolio when empty
	} `yaml:"kubera"`

	Report struct {
		Email       string `yaml:"email"`
		From        string `yaml:"from"`
		Recipient   string `yaml:"recipient"` // name used to personalize reports
		HideAmounts bool   `yaml:"hide_amounts"`
	} `yaml:"report"`

	LLM struct {
		Model string `yaml:"model"`
	} `yaml:"llm"`
}

// DefaultDataDir is where snapshots live unless configured otherwise.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".kubera-reporting", "data")
	}
	return filepath.Join(home, ".kubera-reporting", "data")
}

// LoadConfig reads the config file at path (missing file is fine, defaults
// apply), then applies environment variable overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.DataDir = DefaultDataDir()
	cfg.RetentionDays = DefaultRetentionDays

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KUBERA_REPORT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("KUBERA_REPORT_RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.RetentionDays = days
		}
	}
	if v := os.Getenv("KUBERA_API_KEY"); v != "" {
		cfg.Kubera.APIKey = v
	}
	if v := os.Getenv("KUBERA_API_SECRET"); v != "" {
		cfg.Kubera.APISecret = v
	}
	if v := os.Getenv("KUBERA_REPORT_PORTFOLIO"); v != "" {
		cfg.Kubera.Portfolio = v
	}
	if v := os.Getenv("KUBERA_REPORT_EMAIL"); v != "" {
		cfg.Report.Email = v
	}
	if v := os.Getenv("KUBERA_REPORT_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}

	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = DefaultRetentionDays
	}
	return cfg, nil
}
