package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	yaml := `logging:
  level: debug
  format: json
tracing:
  service_name: ingest
  endpoint: collector:4318
`
	if err := os.WriteFile(configFile, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := Load("ingest", &cfg, WithConfigFile(configFile)); err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Tracing.ServiceName != "ingest" || cfg.Tracing.Endpoint != "collector:4318" {
		t.Errorf("tracing = %+v", cfg.Tracing)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configFile, []byte("logging:\n  level: info\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LOGGING_LEVEL", "error")

	var cfg Config
	if err := Load("ingest", &cfg, WithConfigFile(configFile)); err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("level = %q, want env override error", cfg.Logging.Level)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("LOGGING_FORMAT=json\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets process env; make sure the key is restored afterwards.
	t.Setenv("LOGGING_FORMAT", "")
	_ = os.Unsetenv("LOGGING_FORMAT")

	var cfg Config
	if err := Load("ingest", &cfg, WithEnvFile(envFile)); err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %q, want json from .env", cfg.Logging.Format)
	}
}

func TestLoad_MissingFilesIsFine(t *testing.T) {
	var cfg Config
	if err := Load("nonexistent", &cfg, WithConfigFile(""), WithEnvFile("")); err != nil {
		t.Errorf("missing files should not fail: %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults("ingest")

	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
	if cfg.Tracing.ServiceName != "ingest" || cfg.Tracing.Endpoint != "localhost:4318" {
		t.Errorf("tracing defaults = %+v", cfg.Tracing)
	}
	if cfg.Metrics.ServiceName != "ingest" {
		t.Errorf("metrics defaults = %+v", cfg.Metrics)
	}
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configFile, []byte("logging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Bootstrap("ingest", WithConfigFile(configFile))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configFile, []byte("logging:\n  level: loud\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Bootstrap("ingest", WithConfigFile(configFile)); err == nil {
		t.Error("expected error for invalid log level")
	}
}
