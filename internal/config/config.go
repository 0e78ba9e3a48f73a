package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/vango-dev/htmlr/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlr.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultContentDSN is the content database opened when none is set.
	DefaultContentDSN = "htmlr.db"
)

// Config represents the complete htmlr.json configuration.
type Config struct {
	// Name is the site name, used as the service name for tracing.
	Name string `json:"name,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty"`

	// LogFormat is "text" or "json". It selects the slog handler, and the CLI
	// prints errors as JSON when it is "json".
	LogFormat string `json:"logFormat,omitempty"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Content contains the content store settings.
	Content ContentConfig `json:"content,omitempty"`

	// Publish contains the S3 publishing settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// Live contains the WebSocket fragment push settings.
	Live LiveConfig `json:"live,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ReadTimeout bounds reading a request (e.g., "10s").
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout bounds writing a response.
	WriteTimeout string `json:"writeTimeout,omitempty"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes metrics and records them.
	Enabled bool `json:"enabled"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`

	// Path is the URL path of the metrics endpoint.
	Path string `json:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled creates spans for requests and renders.
	Enabled bool `json:"enabled"`

	// TracerName is the instrumentation name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// ContentConfig contains the content store settings.
type ContentConfig struct {
	// Driver is "sqlite" (pure Go) or "sqlite3" (cgo, built with
	// -tags cgo_sqlite). Empty selects the driver compiled in.
	Driver string `json:"driver,omitempty"`

	// DSN is the data source name passed to sql.Open.
	DSN string `json:"dsn,omitempty"`

	// Seed fills an empty store with the default greetings.
	Seed bool `json:"seed"`
}

// PublishConfig contains the S3 publishing settings.
type PublishConfig struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (e.g., a MinIO server).
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style addressing.
	PathStyle bool `json:"pathStyle"`
}

// LiveConfig contains the WebSocket fragment push settings.
type LiveConfig struct {
	// Enabled mounts the /live endpoint.
	Enabled bool `json:"enabled"`

	// Interval is how often the time fragment is pushed (e.g., "1s").
	Interval string `json:"interval,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{
		Name:      "htmlr",
		LogLevel:  "info",
		LogFormat: "text",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Metrics: MetricsConfig{Enabled: true},
		Tracing: TracingConfig{Enabled: true},
		Content: ContentConfig{Seed: true},
		Live:    LiveConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for htmlr.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No htmlr.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'htmlr init' to create one")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New("E120").
			WithDetail("Failed to parse htmlr.json: " + err.Error()).
			WithSuggestion("Check that htmlr.json is valid JSON").
			Wrap(err)
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &syntaxErr):
			e.WithOffset(path, data, syntaxErr.Offset)
		case stderrors.As(err, &typeErr):
			e.WithOffset(path, data, typeErr.Offset)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo atomically writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
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

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "htmlr"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "5s"
	}

	// Metrics
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "htmlr"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	// Tracing
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = "github.com/vango-dev/htmlr"
	}

	// Content
	if c.Content.DSN == "" {
		c.Content.DSN = DefaultContentDSN
	}

	// Publish
	if c.Publish.Region == "" {
		c.Publish.Region = "us-east-1"
	}

	// Live
	if c.Live.Interval == "" {
		c.Live.Interval = "1s"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.New("E123").
			WithDetail("Unknown log level " + strconv.Quote(c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.New("E126").
			WithDetail("Unknown log format " + strconv.Quote(c.LogFormat))
	}
	for name, value := range map[string]string{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.writeTimeout":    c.Server.WriteTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
		"live.interval":          c.Live.Interval,
	} {
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return errors.New("E124").
				WithDetail(name + " is " + strconv.Quote(value))
		}
	}
	switch c.Content.Driver {
	case "", "sqlite", "sqlite3":
	default:
		return errors.New("E125").
			WithDetail("Unknown driver " + strconv.Quote(c.Content.Driver))
	}
	return nil
}

// Address returns the address string for the server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ReadTimeout returns the parsed server read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return mustDuration(c.Server.ReadTimeout, 10*time.Second)
}

// WriteTimeout returns the parsed server write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return mustDuration(c.Server.WriteTimeout, 10*time.Second)
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	return mustDuration(c.Server.ShutdownTimeout, 5*time.Second)
}

// LiveInterval returns the parsed live push interval.
func (c *Config) LiveInterval() time.Duration {
	return mustDuration(c.Live.Interval, time.Second)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func mustDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the directory holding
// htmlr.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithDetail("No htmlr.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'htmlr init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or one of its parents. Without a config file it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}
