package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port: got %q", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("default mode: got %q", cfg.Server.Mode)
	}
	if cfg.Methods.CSVPath != "" {
		t.Errorf("default csv path: got %q", cfg.Methods.CSVPath)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  port: "9090"
  mode: debug
  cors_origins:
    - https://example.org
methods:
  csv_path: /etc/miqat/methods.csv
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.Mode != "debug" {
		t.Errorf("server block: %+v", cfg.Server)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://example.org" {
		t.Errorf("cors origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Methods.CSVPath != "/etc/miqat/methods.csv" {
		t.Errorf("csv path: %q", cfg.Methods.CSVPath)
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  mode: verbose\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an invalid mode")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
