package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"estateFront/utils"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Backend struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Leads struct {
		InboxEmail string `yaml:"inbox_email"`
	} `yaml:"leads"`
}

// LoadConfig reads the YAML config named by CONFIG_PATH and applies
// environment overrides on top. A missing file is not fatal: the service can
// run entirely from env vars.
func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		utils.Logger.Warnf("Config file %s not readable (%v), using env/defaults", path, err)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		utils.Logger.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("LEADS_INBOX_EMAIL"); v != "" {
		cfg.Leads.InboxEmail = v
	}

	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:5000"
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = 30
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Leads.InboxEmail == "" {
		cfg.Leads.InboxEmail = "info@estatefront.example"
	}

	return cfg
}
