package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moklet-dev/twibbon/internal/errors"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Title != DefaultTitle {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Lang != "en" {
		t.Errorf("Lang = %q", cfg.Lang)
	}
	if cfg.DevAddress() != "localhost:3000" {
		t.Errorf("DevAddress = %q", cfg.DevAddress())
	}
	if cfg.DevURL() != "http://localhost:3000" {
		t.Errorf("DevURL = %q", cfg.DevURL())
	}
	if cfg.Publish.Key != "index.html" || cfg.Publish.CacheControl != DefaultCacheControl {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Tailwind.CDN != DefaultTailwindCDN {
		t.Errorf("Tailwind.CDN = %q", cfg.Tailwind.CDN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Port = %d", cfg.Dev.Port)
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path = %q", cfg.Path())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	data := `{
		"title": "Twibbon",
		"lang": "id",
		"dev": {"port": 8080},
		"render": {"pretty": true, "output": "dist/index.html"},
		"publish": {"bucket": "twibbon-site", "region": "ap-southeast-1"},
		"tracing": {"enabled": true}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Title != "Twibbon" || cfg.Lang != "id" {
		t.Errorf("Title/Lang = %q/%q", cfg.Title, cfg.Lang)
	}
	if cfg.DevAddress() != "localhost:8080" {
		t.Errorf("DevAddress = %q", cfg.DevAddress())
	}
	if !cfg.Render.Pretty || cfg.Render.Output != "dist/index.html" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Publish.Bucket != "twibbon-site" || cfg.Publish.Key != DefaultPublishKey {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if !cfg.Tracing.Enabled || *cfg.Tracing.SampleRate != 1 {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if !errors.Is(err, errors.New(errors.CodeConfigParse)) {
		t.Fatalf("err = %v, want E100", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too high", func(c *Config) { c.Dev.Port = 70000 }},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }},
		{"bad host", func(c *Config) { c.Dev.Host = "a b" }},
		{"absolute key", func(c *Config) { c.Publish.Key = "/index.html" }},
		{"bad bucket", func(c *Config) { c.Publish.Bucket = "a/b" }},
		{"sample rate", func(c *Config) { r := 1.5; c.Tracing.SampleRate = &r }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.New(errors.CodeConfigInvalid)) {
				t.Errorf("err = %v, want E101", err)
			}
		})
	}
}
