package common

import (
	"reflect"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_URL", "DB_MAX_CONNS", "GRPC_ADDR", "UPLOAD_DIR",
		"MISTRAL_API_KEY", "OPENAI_API_KEY", "RASTER_DPI",
		"INTAKE_DIRS", "INTAKE_DEBOUNCE", "EXTRACT_MIN_FIELDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q", cfg.Server.GRPCAddr)
	}
	if cfg.Database.MaxConns != 20 {
		t.Errorf("MaxConns = %d", cfg.Database.MaxConns)
	}
	if cfg.Classify.TextProbeThreshold != 500 {
		t.Errorf("TextProbeThreshold = %d", cfg.Classify.TextProbeThreshold)
	}
	if cfg.Raster.DPI != 200 {
		t.Errorf("DPI = %d", cfg.Raster.DPI)
	}
	if cfg.Pipeline.Concurrency != 4 || cfg.Pipeline.QueueSize != 256 {
		t.Errorf("pipeline defaults = %+v", cfg.Pipeline)
	}
	if cfg.Intake.Dirs != nil {
		t.Errorf("Intake.Dirs = %v, want nil", cfg.Intake.Dirs)
	}
	if cfg.Intake.Debounce != 2*time.Second {
		t.Errorf("Intake.Debounce = %v", cfg.Intake.Debounce)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_URL", "postgres://localhost/contracts")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("INTAKE_DIRS", "/srv/intake , /mnt/drops,")
	t.Setenv("EXTRACT_MIN_FIELDS", "3")
	t.Setenv("PROVIDER_TIMEOUT", "90s")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://localhost/contracts" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Server.GRPCAddr != ":9090" {
		t.Errorf("GRPCAddr = %q", cfg.Server.GRPCAddr)
	}
	if want := []string{"/srv/intake", "/mnt/drops"}; !reflect.DeepEqual(cfg.Intake.Dirs, want) {
		t.Errorf("Intake.Dirs = %v, want %v", cfg.Intake.Dirs, want)
	}
	if cfg.Pipeline.MinFields != 3 {
		t.Errorf("MinFields = %d", cfg.Pipeline.MinFields)
	}
	if cfg.Providers.Timeout != 90*time.Second {
		t.Errorf("provider timeout = %v", cfg.Providers.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database:  DatabaseConfig{DSN: "postgres://localhost/contracts"},
			Server:    ServerConfig{GRPCAddr: ":8080"},
			Raster:    RasterConfig{DPI: 200},
			Providers: ProvidersConfig{TextAPIKey: "k"},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	c := base()
	c.Database.DSN = ""
	if err := c.Validate(); err == nil {
		t.Error("missing DSN accepted")
	}

	c = base()
	c.Providers.TextAPIKey = ""
	if err := c.Validate(); err == nil {
		t.Error("config with no provider keys accepted")
	}
	c.Providers.VisionAPIKey = "k"
	if err := c.Validate(); err != nil {
		t.Errorf("vision-only config rejected: %v", err)
	}

	c = base()
	c.Raster.DPI = 72
	if err := c.Validate(); err == nil {
		t.Error("sub-floor DPI accepted")
	}
}
