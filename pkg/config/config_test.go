package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	return dir
}

func TestLoad_MissingEnvFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := Default()
	if cfg.OutputDir != defaults.OutputDir || cfg.MaxDepth != defaults.MaxDepth || cfg.ThumbnailSize != defaults.ThumbnailSize {
		t.Errorf("Expected defaults %+v, got %+v", defaults, cfg)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := writeEnvFile(t, `RAYTRACER_OUTPUT_DIR=/tmp/renders
RAYTRACER_WORKERS=3
RAYTRACER_MAX_DEPTH=4
S3_BUCKET=renders
S3_ACCESS_KEY=key
S3_SECRET_KEY=secret
CDN_URL=https://cdn.example.com
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputDir != "/tmp/renders" {
		t.Errorf("Expected output dir from .env, got %q", cfg.OutputDir)
	}
	if cfg.Workers != 3 || cfg.MaxDepth != 4 {
		t.Errorf("Expected workers 3 and depth 4, got %d and %d", cfg.Workers, cfg.MaxDepth)
	}
	if !cfg.S3.Enabled() || cfg.S3.CDNURL != "https://cdn.example.com" {
		t.Errorf("Expected S3 settings from .env, got %+v", cfg.S3)
	}
	if cfg.S3.Region != "us-east-1" {
		t.Errorf("Expected default region, got %q", cfg.S3.Region)
	}
}

func TestLoad_ProcessEnvOverridesFile(t *testing.T) {
	dir := writeEnvFile(t, "RAYTRACER_WORKERS=3\n")
	t.Setenv("RAYTRACER_WORKERS", "7")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 7 {
		t.Errorf("Expected process env to win, got %d workers", cfg.Workers)
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	dir := writeEnvFile(t, "RAYTRACER_MAX_DEPTH=deep\n")
	if _, err := Load(dir); err == nil {
		t.Error("Expected error for non-numeric max depth")
	}
}
