package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := loadConfig()

	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected port: %s", cfg.Server.Port)
	}
	if cfg.Fetch.Timeout() != 10*time.Second {
		t.Fatalf("unexpected fetch timeout: %v", cfg.Fetch.Timeout())
	}
	if cfg.LLM.Timeout() != 120*time.Second {
		t.Fatalf("unexpected llm timeout: %v", cfg.LLM.Timeout())
	}
	if cfg.Workspace.Dir == "" {
		t.Fatal("expected workspace dir default")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: \"9000\"\n  mode: release\nfetch:\n  timeout_seconds: 3\nllm:\n  groq_base_url: http://localhost:1234/v1\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config error: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := loadConfig()

	if cfg.Server.Port != "9000" || cfg.Server.Mode != "release" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Fetch.TimeoutSeconds != 3 {
		t.Fatalf("unexpected fetch timeout: %d", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.LLM.GroqBaseURL != "http://localhost:1234/v1" {
		t.Fatalf("unexpected groq base url: %s", cfg.LLM.GroqBaseURL)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0644); err != nil {
		t.Fatalf("write config error: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7000")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "5")

	cfg := loadConfig()

	if cfg.Server.Port != "7000" {
		t.Fatalf("expected env override, got %s", cfg.Server.Port)
	}
	if cfg.Fetch.TimeoutSeconds != 5 {
		t.Fatalf("expected env override, got %d", cfg.Fetch.TimeoutSeconds)
	}
}
