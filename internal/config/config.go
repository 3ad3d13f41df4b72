package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/QAddict/ruix/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "ruix.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTitle is the default page title.
	DefaultTitle = "RUIX demo"

	// DefaultKey is the default object key of a published page.
	DefaultKey = "index.html"
)

// Config represents the complete ruix.yaml configuration.
type Config struct {
	// Title is the page title.
	Title string `yaml:"title"`

	// Books is the path of a JSON file with the demo bookstore content,
	// resolved against the config directory. Empty uses the built-in list.
	Books string `yaml:"books"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `yaml:"preview"`

	// Render contains static rendering configuration.
	Render RenderConfig `yaml:"render"`

	// Publish contains page upload configuration.
	Publish PublishConfig `yaml:"publish"`

	// Log contains logging configuration.
	Log LogConfig `yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ShutdownTimeout bounds graceful shutdown. Default 5s.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// Metrics enables the /metrics endpoint. Default true.
	Metrics *bool `yaml:"metrics"`
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	Pretty bool   `yaml:"pretty"`
	Indent string `yaml:"indent"`
}

// PublishConfig configures page upload to S3.
type PublishConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Key    string `yaml:"key"`
	Region string `yaml:"region"`

	// Endpoint overrides the S3 endpoint for S3-compatible stores.
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default info.
	Level string `yaml:"level"`

	// Format is text or json. Default text.
	Format string `yaml:"format"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// New creates a new Config with default values.
func New() *Config {
	metrics := true
	return &Config{
		Title: DefaultTitle,
		Preview: PreviewConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: Duration(5 * time.Second),
			Metrics:         &metrics,
		},
		Render: RenderConfig{
			Indent: "  ",
		},
		Publish: PublishConfig{
			Key: DefaultKey,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads ruix.yaml from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("R101").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " or omit --config to use defaults")
		}
		return nil, errors.New("R100").Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// LoadOptional loads path when it exists and returns defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.HasCode(err, "R101") {
		return New(), nil
	}
	return cfg, err
}

// Parse parses YAML configuration data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("R100").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}

	if err := cfg.expand(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for fields emptied by the file.
func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.ShutdownTimeout == 0 {
		c.Preview.ShutdownTimeout = Duration(5 * time.Second)
	}
	if c.Preview.Metrics == nil {
		metrics := true
		c.Preview.Metrics = &metrics
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Publish.Key == "" {
		c.Publish.Key = DefaultKey
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) expand() error {
	for _, field := range []*string{&c.Books, &c.Publish.Bucket, &c.Publish.Prefix, &c.Publish.Key, &c.Publish.Region, &c.Publish.Endpoint} {
		expanded, err := expandEnvVars(*field)
		if err != nil {
			return errors.New("R102").Wrap(err)
		}
		*field = expanded
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("R102").
			WithDetail("preview.port must be between 0 and 65535, got " + strconv.Itoa(c.Preview.Port))
	}
	if c.Preview.ShutdownTimeout < 0 {
		return errors.New("R102").
			WithDetail("preview.shutdown_timeout must not be negative")
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("R102").
			WithDetailf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errors.New("R102").
			WithDetailf("log.format must be text or json, got %q", c.Log.Format)
	}
	if strings.HasPrefix(c.Publish.Key, "/") {
		return errors.New("R102").
			WithDetail("publish.key must be relative to the bucket")
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// BooksPath returns the books file resolved against the config directory,
// or "" when none is configured.
func (c *Config) BooksPath() string {
	if c.Books == "" || filepath.IsAbs(c.Books) {
		return c.Books
	}
	return filepath.Join(c.Dir(), c.Books)
}

// PreviewAddress returns the listen address of the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// PreviewURL returns the URL of the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// ObjectKey returns the S3 key of the published page.
func (c *Config) ObjectKey() string {
	return c.Publish.Prefix + c.Publish.Key
}

// MetricsEnabled reports whether the preview server exposes /metrics.
func (c *Config) MetricsEnabled() bool {
	return c.Preview.Metrics == nil || *c.Preview.Metrics
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[strings.ToLower(c.Log.Level)]}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values. An unset variable without default is an error.
func expandEnvVars(s string) (string, error) {
	var firstErr error
	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}
		m := envVarPattern.FindStringSubmatch(match)
		if value, ok := os.LookupEnv(m[1]); ok {
			return value
		}
		if m[2] != "" {
			return m[3]
		}
		firstErr = fmt.Errorf("environment variable %q is not set", m[1])
		return match
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}
