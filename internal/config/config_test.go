package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("expected default title %q, got %q", DefaultTitle, cfg.Title)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("expected default db path %q, got %q", DefaultDBPath, cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notedoc.yaml")
	content := "credentials: /etc/creds.json\ntitle: Weekly Plan\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Credentials != "/etc/creds.json" {
		t.Errorf("expected credentials from file, got %q", cfg.Credentials)
	}
	if cfg.Title != "Weekly Plan" {
		t.Errorf("expected title from file, got %q", cfg.Title)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from file, got %q", cfg.LogLevel)
	}
	// Keys absent from the file keep their defaults.
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("NOTEDOC_TITLE", "From Env")
	t.Setenv("NOTEDOC_DB_PATH", "/tmp/env.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "From Env" {
		t.Errorf("expected title from env, got %q", cfg.Title)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Errorf("expected db path from env, got %q", cfg.DBPath)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for malformed config file")
	}
}
