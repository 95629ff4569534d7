package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "CATALOG_FILE", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.CatalogFile != "" {
		t.Fatalf("expected built-in catalog by default, got %s", cfg.CatalogFile)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if !cfg.EnableRequestLogging {
		t.Fatalf("expected request logging to be enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_FILE", "/etc/packaging.yaml")
	t.Setenv("RATE_LIMIT_RPS", "3.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.CatalogFile != "/etc/packaging.yaml" {
		t.Fatalf("expected catalog file from env, got %s", cfg.CatalogFile)
	}
	if cfg.RateLimitRPS != 3.5 {
		t.Fatalf("expected rps 3.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("expected invalid burst to be ignored, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "7100"
log_level: debug
write_timeout: 2s
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 0
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	port := "7200"
	cfg, err := Load(&CLIOverrides{ConfigFile: path, Port: &port})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7200" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected YAML log level to beat env, got %s", cfg.LogLevel)
	}
	if cfg.WriteTimeout != 2*time.Second {
		t.Fatalf("unexpected write timeout %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging to be disabled by YAML")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 0 {
		t.Fatalf("expected rate limiting disabled, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("idle_timeout: soon\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for invalid duration")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		level := "loud"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for invalid log level")
		}
	})
}
