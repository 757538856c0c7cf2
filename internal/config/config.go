// Package config loads settings from an optional YAML file overridden by
// environment variables, so containers can run file-less.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arioseno/contactbook-backend/internal/logger"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

func (dc DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dc.User, dc.Password, dc.Host, dc.Port, dc.Name, dc.SSLMode)
}

type Config struct {
	Addr         string         `yaml:"addr"`
	LogMode      string         `yaml:"log_mode"`
	ServiceName  string         `yaml:"service_name"`
	AllowOrigins []string       `yaml:"allow_origins"`
	Database     DatabaseConfig `yaml:"database"`
}

func defaults() Config {
	return Config{
		Addr:         ":8080",
		LogMode:      "development",
		ServiceName:  "contactbook",
		AllowOrigins: []string{"http://localhost:3000"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "contactbook",
			SSLMode: "disable",
		},
	}
}

// Load reads CONFIG_FILE (when set) over the defaults, then applies env
// overrides on top.
func Load(log *logger.Logger) (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
		log.Info("Config file loaded", "path", path)
	}

	cfg.Addr = getEnv("ADDR", cfg.Addr, log)
	cfg.LogMode = getEnv("LOG_MODE", cfg.LogMode, log)
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName, log)
	if origins := getEnv("CORS_ALLOW_ORIGINS", "", log); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	cfg.Database.Host = getEnv("POSTGRES_HOST", cfg.Database.Host, log)
	cfg.Database.Port = getEnv("POSTGRES_PORT", cfg.Database.Port, log)
	cfg.Database.User = getEnv("POSTGRES_USER", cfg.Database.User, log)
	cfg.Database.Password = getEnv("POSTGRES_PASSWORD", cfg.Database.Password, log)
	cfg.Database.Name = getEnv("POSTGRES_NAME", cfg.Database.Name, log)
	cfg.Database.SSLMode = getEnv("POSTGRES_SSLMODE", cfg.Database.SSLMode, log)

	return cfg, nil
}

func getEnv(key, defaultVal string, log *logger.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	if log != nil {
		log.Debug("Environment override", "env_var", key)
	}
	return val
}
