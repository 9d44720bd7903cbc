package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Extract   ExtractConfig   `yaml:"extract"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Ledger    LedgerConfig    `yaml:"ledger"`
}

// DatabaseConfig holds database-related configuration. An empty DSN
// disables persistence; the pipeline itself never needs the database.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
	DialTimeout     time.Duration `yaml:"dial_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	Pdftotext string        `yaml:"pdftotext"` // binary name or absolute path
	Timeout   time.Duration `yaml:"timeout"`   // per-document cap
}

// EstimatorConfig holds estimation-service configuration
type EstimatorConfig struct {
	Provider     string        `yaml:"provider"` // "openai" | "gemini"
	Model        string        `yaml:"model"`
	APIKey       string        `yaml:"api_key"`
	BaseURL      string        `yaml:"base_url"`
	Temperature  float32       `yaml:"temperature"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxTextChars int           `yaml:"max_text_chars"`
}

// LedgerConfig holds ledger-boundary configuration. An empty Backend
// disables the recording flow entirely.
type LedgerConfig struct {
	Backend         string `yaml:"backend"` // "" | "db" | "chain"
	ContractAddress string `yaml:"contract_address"`
}

// LoadConfig loads configuration from environment variables, then
// applies the optional YAML overlay named by ONECARBON_CONFIG.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 64<<20),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Extract: ExtractConfig{
			Pdftotext: getEnv("PDFTOTEXT", "pdftotext"),
			Timeout:   getEnvAsDuration("EXTRACT_TIMEOUT", 30*time.Second),
		},
		Estimator: EstimatorConfig{
			Provider:     getEnv("ESTIMATOR_PROVIDER", "openai"),
			Model:        getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", ""),
			Temperature:  getEnvAsFloat32("OPENAI_TEMPERATURE", 0.7),
			Timeout:      getEnvAsDuration("ESTIMATOR_TIMEOUT", 45*time.Second),
			MaxTextChars: getEnvAsInt("MAX_TEXT_CHARS", 10000),
		},
		Ledger: LedgerConfig{
			Backend:         getEnv("LEDGER_BACKEND", ""),
			ContractAddress: getEnv("CONTRACT_ADDRESS", ""),
		},
	}
	if cfg.Estimator.Provider == "gemini" {
		cfg.Estimator.Model = getEnv("GEMINI_MODEL", "gemini-2.0-flash")
		cfg.Estimator.APIKey = getEnv("GEMINI_API_KEY", "")
	}

	if path := os.Getenv("ONECARBON_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, WrapError(err, "loading config file")
		}
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, c)
}

// Validate checks the configuration needed before serving. The estimator
// key is the one hard requirement: without it every upload would 500.
func (c *Config) Validate() error {
	if c.Estimator.APIKey == "" {
		key := "OPENAI_API_KEY"
		if c.Estimator.Provider == "gemini" {
			key = "GEMINI_API_KEY"
		}
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("%s is required", key), ErrConfigMissing)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrConfigMissing)
	}
	if c.Ledger.Backend == "chain" && c.Ledger.ContractAddress == "" {
		return NewAppError("CONFIG_ERROR", "CONTRACT_ADDRESS is required for the chain ledger", ErrConfigMissing)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
