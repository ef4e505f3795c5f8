package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Classify  ClassifyConfig
	Raster    RasterConfig
	Providers ProvidersConfig
	Intake    IntakeConfig
	Pipeline  PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr  string
	UploadDir string
}

// ClassifyConfig holds format-classifier configuration
type ClassifyConfig struct {
	Pdftotext string
	// TextProbeThreshold is the average number of extractable characters
	// per page above which a PDF counts as text-bearing.
	TextProbeThreshold int
}

// RasterConfig holds rasterizer configuration
type RasterConfig struct {
	Pdftoppm string
	DPI      int
	MaxPages int
}

// ProvidersConfig holds extraction-provider configuration. A provider with
// an empty API key is disabled; selection treats it like a hard failure.
type ProvidersConfig struct {
	TextAPIKey    string
	TextModel     string
	TextBaseURL   string
	VisionAPIKey  string
	VisionModel   string
	VisionBaseURL string
	Timeout       time.Duration
}

// IntakeConfig holds intake-directory watching configuration. Files
// dropped under a watched root at <draft-id>/<section>/<role>/ are
// picked up and queued automatically.
type IntakeConfig struct {
	Dirs        []string
	Debounce    time.Duration
	InitialScan bool
}

// PipelineConfig holds orchestration configuration
type PipelineConfig struct {
	// MinFields is the smallest payload (distinct keys) accepted without
	// triggering the fallback provider.
	MinFields   int
	Concurrency int
	QueueSize   int
	JobTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
			UploadDir: getEnv("UPLOAD_DIR", "./tmp"),
		},
		Classify: ClassifyConfig{
			Pdftotext:          getEnv("PDFTOTEXT_BIN", "pdftotext"),
			TextProbeThreshold: getEnvAsInt("TEXT_PROBE_THRESHOLD", 500),
		},
		Raster: RasterConfig{
			Pdftoppm: getEnv("PDFTOPPM_BIN", "pdftoppm"),
			DPI:      getEnvAsInt("RASTER_DPI", 200),
			MaxPages: getEnvAsInt("RASTER_MAX_PAGES", 5),
		},
		Providers: ProvidersConfig{
			TextAPIKey:    getEnv("MISTRAL_API_KEY", ""),
			TextModel:     getEnv("MISTRAL_MODEL", "mistral-small-latest"),
			TextBaseURL:   getEnv("MISTRAL_BASE_URL", ""),
			VisionAPIKey:  getEnv("OPENAI_API_KEY", ""),
			VisionModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
			VisionBaseURL: getEnv("OPENAI_BASE_URL", ""),
			Timeout:       getEnvAsDuration("PROVIDER_TIMEOUT", 45*time.Second),
		},
		Intake: IntakeConfig{
			Dirs:        getEnvAsSlice("INTAKE_DIRS"),
			Debounce:    getEnvAsDuration("INTAKE_DEBOUNCE", 2*time.Second),
			InitialScan: getEnv("INTAKE_INITIAL_SCAN", "") != "",
		},
		Pipeline: PipelineConfig{
			MinFields:   getEnvAsInt("EXTRACT_MIN_FIELDS", 1),
			Concurrency: getEnvAsInt("EXTRACT_CONCURRENCY", 4),
			QueueSize:   getEnvAsInt("EXTRACT_QUEUE_SIZE", 256),
			JobTimeout:  getEnvAsDuration("EXTRACT_JOB_TIMEOUT", 3*time.Minute),
		},
	}
}

func getEnvAsSlice(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Providers.TextAPIKey == "" && c.Providers.VisionAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "at least one of MISTRAL_API_KEY or OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Raster.DPI < 100 {
		// below this small print degrades past what vision models can read
		return NewAppError("CONFIG_ERROR", "RASTER_DPI must be at least 100", ErrInvalidInput)
	}
	return nil
}
