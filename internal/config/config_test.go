package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/QAddict/ruix/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, DefaultHost)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", cfg.Title, DefaultTitle)
	}
	if cfg.Publish.Key != DefaultKey {
		t.Errorf("Publish.Key = %q, want %q", cfg.Publish.Key, DefaultKey)
	}
	if !cfg.MetricsEnabled() {
		t.Error("MetricsEnabled() = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "R101") {
		t.Errorf("Load() of missing config error = %v, want R101", err)
	}

	t.Setenv("RUIX_TEST_BUCKET", "pages")
	configYAML := `
title: Bookstore
books: data/books.json
preview:
  host: 0.0.0.0
  port: 8080
  shutdown_timeout: 2s
  metrics: false
render:
  pretty: true
publish:
  bucket: ${RUIX_TEST_BUCKET}
  prefix: site/
  region: ${RUIX_TEST_REGION:-eu-west-1}
log:
  level: debug
  format: json
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Title != "Bookstore" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Bookstore")
	}
	if got := cfg.PreviewAddress(); got != "0.0.0.0:8080" {
		t.Errorf("PreviewAddress() = %q, want %q", got, "0.0.0.0:8080")
	}
	if got := cfg.Preview.ShutdownTimeout.Duration(); got != 2*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 2s", got)
	}
	if cfg.MetricsEnabled() {
		t.Error("MetricsEnabled() = true, want false")
	}
	if !cfg.Render.Pretty || cfg.Render.Indent != "  " {
		t.Errorf("Render = %+v, want pretty with default indent", cfg.Render)
	}
	if cfg.Publish.Bucket != "pages" {
		t.Errorf("Publish.Bucket = %q, want %q", cfg.Publish.Bucket, "pages")
	}
	if cfg.Publish.Region != "eu-west-1" {
		t.Errorf("Publish.Region = %q, want %q", cfg.Publish.Region, "eu-west-1")
	}
	if got := cfg.ObjectKey(); got != "site/index.html" {
		t.Errorf("ObjectKey() = %q, want %q", got, "site/index.html")
	}
	if got := cfg.BooksPath(); got != filepath.Join(tmpDir, "data", "books.json") {
		t.Errorf("BooksPath() = %q", got)
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) || cfg.Dir() != tmpDir {
		t.Errorf("Path() = %q, Dir() = %q", cfg.Path(), cfg.Dir())
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("LoadOptional error: %v", err)
	}
	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"invalid yaml", "preview: [", "R100"},
		{"bad duration", "preview:\n  shutdown_timeout: soon\n", "R100"},
		{"port range", "preview:\n  port: 70000\n", "R102"},
		{"log level", "log:\n  level: loud\n", "R102"},
		{"log format", "log:\n  format: xml\n", "R102"},
		{"absolute key", "publish:\n  key: /index.html\n", "R102"},
		{"unset env", "publish:\n  bucket: ${RUIX_TEST_UNSET_VARIABLE}\n", "R102"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Preview.Port != DefaultPort || cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview = %+v, want defaults", cfg.Preview)
	}
	if cfg.Preview.ShutdownTimeout.Duration() != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.Preview.ShutdownTimeout.Duration())
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := New()
	cfg.Log = LogConfig{Level: "warn", Format: "json"}

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "n", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"n":1`) {
		t.Errorf("output = %s, want JSON warn record", out)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("RUIX_TEST_A", "a")
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"${RUIX_TEST_A}/x", "a/x"},
		{"${RUIX_TEST_MISSING:-d}", "d"},
		{"${RUIX_TEST_MISSING:-}", ""},
	}
	for _, tt := range tests {
		got, err := expandEnvVars(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists() = true for empty dir")
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Error("Exists() = false after creating the file")
	}
}
