package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/output"
)

// Config holds settings shared by the CLI and the web server
type Config struct {
	OutputDir     string // Root directory for rendered images
	ScenesDir     string // Directory scanned for JSON scene files
	ServerAddress string // Listen address of the web server
	Workers       int    // Parallel render workers (0 = CPU count)
	MaxDepth      int    // Reflection/refraction depth override (-1 = scene default)
	ThumbnailSize int    // Longest thumbnail edge in pixels (0 = no thumbnail)
	S3            output.S3Config
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		OutputDir:     "output",
		ScenesDir:     "scenes",
		ServerAddress: ":8080",
		Workers:       0,
		MaxDepth:      -1,
		ThumbnailSize: output.DefaultThumbnailSize,
	}
}

// Load reads configuration from the process environment and an optional .env
// file in dir. Process environment variables take precedence over the file.
func Load(dir string) (Config, error) {
	fileEnv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		if value, ok := fileEnv[key]; ok {
			return value
		}
		return fallback
	}

	cfg := Default()
	cfg.OutputDir = getEnv("RAYTRACER_OUTPUT_DIR", cfg.OutputDir)
	cfg.ScenesDir = getEnv("RAYTRACER_SCENES_DIR", cfg.ScenesDir)
	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)

	ints := []struct {
		key    string
		target *int
	}{
		{"RAYTRACER_WORKERS", &cfg.Workers},
		{"RAYTRACER_MAX_DEPTH", &cfg.MaxDepth},
		{"RAYTRACER_THUMBNAIL_SIZE", &cfg.ThumbnailSize},
	}
	for _, entry := range ints {
		raw := getEnv(entry.key, "")
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", entry.key, raw, err)
		}
		*entry.target = value
	}

	cfg.S3 = output.S3Config{
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    getEnv("S3_BUCKET", ""),
		CDNURL:    getEnv("CDN_URL", ""),
	}

	return cfg, nil
}
