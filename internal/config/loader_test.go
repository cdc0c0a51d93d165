package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Roneo412/httpsync/internal/domain"
)

func TestLoadFromString_Defaults(t *testing.T) {
	cfg, err := LoadFromString("url: http://host:8000/")
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if cfg.URL != "http://host:8000/" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Path != "." {
		t.Errorf("Path = %q, want .", cfg.Path)
	}
	if cfg.Loop != 0 {
		t.Errorf("Loop = %d, want 0", cfg.Loop)
	}
	if len(cfg.Ignore) != 2 {
		t.Errorf("Ignore = %v, want the two defaults", cfg.Ignore)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
}

func TestLoadFromString_Overrides(t *testing.T) {
	cfg, err := LoadFromString(`
url: http://host/
path: /srv/mirror
loop: 30
timeout: 10
ignore:
  - "*.tmp"
  - thumbs.db
log:
  level: debug
  format: json
  file: /var/log/httpsync.log
`)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if cfg.Path != "/srv/mirror" || cfg.Loop != 30 || cfg.Timeout != 10 {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "*.tmp" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.File != "/var/log/httpsync.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFromString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative loop", "loop: -5"},
		{"negative timeout", "timeout: -1"},
		{"bad log level", "log:\n  level: noisy"},
		{"bad log format", "log:\n  format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.yaml)
			if !errors.Is(err, domain.ErrConfigInvalid) {
				t.Errorf("err = %v, want ErrConfigInvalid", err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("url: http://host/\nloop: 5\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Loop != 5 {
		t.Errorf("Loop = %d, want 5", cfg.Loop)
	}
}

func TestLoad_MissingNamedFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loading a missing named file should fail")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
	if cfg.Path != "." || len(cfg.Ignore) != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
}
