package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Completer CompleterConfig
	Ingest    IngestConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CompleterConfig holds settings for the LLM completion provider.
type CompleterConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// IngestConfig holds document ingestion settings.
type IngestConfig struct {
	// AnnualizeMonths is the multiplier applied to fallback-analyzer bucket
	// totals, assuming monthly-granularity input. Default 12.
	AnnualizeMonths int   `mapstructure:"annualize_months"`
	MaxFileSizeMB   int64 `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the TAXWISE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Completer defaults
	v.SetDefault("completer.provider", "groq")
	v.SetDefault("completer.api_key", "")
	v.SetDefault("completer.model", "")
	v.SetDefault("completer.endpoint", "")
	v.SetDefault("completer.timeout_secs", 60)

	// Ingest defaults
	v.SetDefault("ingest.annualize_months", 12)
	v.SetDefault("ingest.max_file_size_mb", 25)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "TAXWISE_SERVER_PORT",
		"server.read_timeout":     "TAXWISE_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "TAXWISE_SERVER_WRITE_TIMEOUT",
		"server.environment":      "TAXWISE_SERVER_ENVIRONMENT",
		"log.level":               "TAXWISE_LOG_LEVEL",
		"log.format":              "TAXWISE_LOG_FORMAT",
		"cors.allowed_origins":    "TAXWISE_CORS_ALLOWED_ORIGINS",
		"completer.provider":      "TAXWISE_COMPLETER_PROVIDER",
		"completer.api_key":       "TAXWISE_COMPLETER_API_KEY",
		"completer.model":         "TAXWISE_COMPLETER_MODEL",
		"completer.endpoint":      "TAXWISE_COMPLETER_ENDPOINT",
		"completer.timeout_secs":  "TAXWISE_COMPLETER_TIMEOUT_SECS",
		"ingest.annualize_months": "TAXWISE_INGEST_ANNUALIZE_MONTHS",
		"ingest.max_file_size_mb": "TAXWISE_INGEST_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TAXWISE_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TAXWISE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Completer = CompleterConfig{
		Provider:    v.GetString("completer.provider"),
		APIKey:      v.GetString("completer.api_key"),
		Model:       v.GetString("completer.model"),
		Endpoint:    v.GetString("completer.endpoint"),
		TimeoutSecs: v.GetInt("completer.timeout_secs"),
	}

	// GROQ_API_KEY is honored as a fallback credential so an existing .env
	// written for the original deployment keeps working.
	if cfg.Completer.APIKey == "" && cfg.Completer.Provider == "groq" {
		cfg.Completer.APIKey = os.Getenv("GROQ_API_KEY")
	}

	cfg.Ingest = IngestConfig{
		AnnualizeMonths: v.GetInt("ingest.annualize_months"),
		MaxFileSizeMB:   v.GetInt64("ingest.max_file_size_mb"),
	}

	return cfg, nil
}
