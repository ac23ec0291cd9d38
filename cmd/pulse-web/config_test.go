package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != "127.0.0.1:3000" {
		t.Fatalf("api-addr = %q, want 127.0.0.1:3000", cfg.APIAddr)
	}
	if cfg.ConfigPath != "" {
		t.Fatalf("config path = %q, want empty when no file exists", cfg.ConfigPath)
	}
}

func TestLoadConfig_HostAndPort(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "api-host: 0.0.0.0\napi-port: 8080\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != "0.0.0.0:8080" {
		t.Fatalf("api-addr = %q, want 0.0.0.0:8080", cfg.APIAddr)
	}
	if cfg.ConfigPath == "" {
		t.Fatal("config path should be recorded")
	}
}

func TestLoadConfig_AddrWins(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "api-port: 8080\napi-addr: localhost:9999\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != "localhost:9999" {
		t.Fatalf("api-addr = %q, want localhost:9999", cfg.APIAddr)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, body := range []string{"api-port: 0\n", "api-port: 70000\n"} {
		_, err := loadConfig(writeConfig(t, body))
		if err == nil || !strings.Contains(err.Error(), "invalid api-port") {
			t.Fatalf("%q: err = %v, want invalid api-port", body, err)
		}
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("PULSE_API_PORT", "4321")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != "127.0.0.1:4321" {
		t.Fatalf("api-addr = %q, want 127.0.0.1:4321", cfg.APIAddr)
	}
}

func TestShortenPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got := shortenPath(filepath.Join(home, ".config", "pulse", "config.yml"))
	if got != "~/.config/pulse/config.yml" {
		t.Fatalf("shortenPath = %q", got)
	}
}
