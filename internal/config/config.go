package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

const defaultAdminKey = "supersecretadminkey"

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Storage struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"storage"`
	Admin struct {
		Key string `yaml:"key"`
	} `yaml:"admin"`
}

// LoadConfig reads config/config.yaml (path overridable via CONFIG_PATH) and
// applies environment overrides on top. A missing file is not fatal: every
// field has a usable default, matching how the original ran from env alone.
func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Failed to unmarshal config data: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("Failed to read config file: %v", err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Address = ":" + v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("ADMIN_KEY"); v != "" {
		cfg.Admin.Key = v
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":3000"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "directory.db"
	}
	if cfg.Admin.Key == "" {
		cfg.Admin.Key = defaultAdminKey
	}
	return cfg
}
