package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config without file: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "enrollhub" {
		t.Fatalf("expected default db name enrollhub, got %q", cfg.Database.DBName)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"9090\"\ndatabase:\n  dbname: \"coursedb\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090 from file, got %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "coursedb" {
		t.Fatalf("expected db name coursedb from file, got %q", cfg.Database.DBName)
	}
	// Values absent from the file keep their defaults
	if cfg.Database.Host != "localhost" {
		t.Fatalf("expected default host, got %q", cfg.Database.Host)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("env override not applied to port, got %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Fatalf("env override not applied to host, got %q", cfg.Database.Host)
	}
}

func TestLoadConfig_InvalidLifetime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for invalid conn_max_lifetime")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "enrollhub"

	want := "postgres://app:secret@db:5433/enrollhub?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
