package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// DBHostEnv is the environment variable for database host.
	DBHostEnv = "DB_HOST"

	// DBPortEnv is the environment variable for database port.
	DBPortEnv = "DB_PORT"

	// DBUserEnv is the environment variable for database user.
	DBUserEnv = "DB_USER"

	// DBPassEnv is the environment variable for database password.
	DBPassEnv = "DB_PASS"

	// DBNameEnv is the environment variable for database name.
	DBNameEnv = "DB_NAME"

	// MigrationsPathEnv is the environment variable for the SQL migrations source.
	MigrationsPathEnv = "MIGRATIONS_PATH"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for SQS queue URL.
	SQSQueueURLEnv = "SQS_QUEUE_URL"

	// OutboxIntervalEnv is the environment variable for the outbox polling interval in milliseconds.
	OutboxIntervalEnv = "OUTBOX_INTERVAL_MS"

	// CatalogAPIURLEnv is the environment variable for the catalog API base URL used by the web front-end.
	CatalogAPIURLEnv = "CATALOG_API_URL"

	// CatalogAPITimeoutEnv is the environment variable for the catalog API request timeout in milliseconds.
	CatalogAPITimeoutEnv = "CATALOG_API_TIMEOUT_MS"

	// ViewportBreakpointEnv is the environment variable for the table/cards breakpoint in CSS pixels.
	ViewportBreakpointEnv = "VIEWPORT_BREAKPOINT"
)

const (
	DefaultMigrationsPath    = "file://migrations"
	DefaultOutboxInterval    = 2000
	DefaultCatalogAPITimeout = 5000
	DefaultBreakpoint        = 900
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the application configuration. Each binary fills the sections it needs.
type Config struct {
	DebugMode     bool
	Database      DB
	HTTPServer    Server
	MetricsServer Server
	AWS           AWSConfig
	Outbox        Outbox
	CatalogAPI    CatalogAPI
	Web           Web
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region      string
	Endpoint    string
	SQSQueueURL string
}

// DB represents database configuration settings.
type DB struct {
	Host           string
	User           string
	Password       string
	Name           string
	Port           string
	MigrationsPath string
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// Outbox configures the outbox relay.
type Outbox struct {
	Interval time.Duration
}

// CatalogAPI locates the catalog API for the web front-end.
type CatalogAPI struct {
	URL     string
	Timeout time.Duration
}

// Web configures page rendering.
type Web struct {
	Breakpoint int
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if err := allNonEmpty(map[string]string{
		DBHostEnv: c.Database.Host,
		DBUserEnv: c.Database.User,
		DBNameEnv: c.Database.Name,
	}); err != nil {
		return fmt.Errorf("database configuration incomplete: %w", err)
	}
	if err := allNumbers(map[string]string{
		DBPortEnv: c.Database.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}
	return nil
}

func (c *Config) validateServers() error {
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}
	if err := allNumbers(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}
	return nil
}

func (c *Config) validateQueue() error {
	if err := allNonEmpty(map[string]string{
		SQSQueueURLEnv: c.AWS.SQSQueueURL,
	}); err != nil {
		return fmt.Errorf("AWS configuration incomplete: %w", err)
	}
	return nil
}

func (c *Config) validateCatalogAPI() error {
	if err := allNonEmpty(map[string]string{
		CatalogAPIURLEnv: c.CatalogAPI.URL,
	}); err != nil {
		return fmt.Errorf("catalog API configuration incomplete: %w", err)
	}
	if c.CatalogAPI.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrMissingConfig, CatalogAPITimeoutEnv)
	}
	if c.Web.Breakpoint <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrMissingConfig, ViewportBreakpointEnv)
	}
	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid number for key %s: %w", name, err)
	}
	return val, nil
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

func millis(name string, defaultValue int) (time.Duration, error) {
	ms, err := getEnvAsInt(name, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func applyDefaultEnvFile() {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}
}

func base() *Config {
	return &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		AWS: AWSConfig{
			Region:      os.Getenv(AWSRegionEnv),
			Endpoint:    os.Getenv(AWSEndpointEnv),
			SQSQueueURL: os.Getenv(SQSQueueURLEnv),
		},
	}
}

// LoadAPIFromEnv loads and validates the catalog API configuration.
func LoadAPIFromEnv() (*Config, error) {
	applyDefaultEnvFile()

	conf := base()
	conf.Database = DB{
		Host:           os.Getenv(DBHostEnv),
		User:           os.Getenv(DBUserEnv),
		Password:       os.Getenv(DBPassEnv),
		Name:           os.Getenv(DBNameEnv),
		Port:           os.Getenv(DBPortEnv),
		MigrationsPath: getEnvOrDefault(MigrationsPathEnv, DefaultMigrationsPath),
	}
	interval, err := millis(OutboxIntervalEnv, DefaultOutboxInterval)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	conf.Outbox = Outbox{Interval: interval}

	for _, validate := range []func() error{conf.validateDatabase, conf.validateServers, conf.validateQueue} {
		if err := validate(); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	if conf.Outbox.Interval <= 0 {
		return nil, fmt.Errorf("configuration validation failed: %w: %s must be positive", ErrMissingConfig, OutboxIntervalEnv)
	}
	return conf, nil
}

// LoadWebFromEnv loads and validates the web front-end configuration.
func LoadWebFromEnv() (*Config, error) {
	applyDefaultEnvFile()

	conf := base()
	timeout, err := millis(CatalogAPITimeoutEnv, DefaultCatalogAPITimeout)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	breakpoint, err := getEnvAsInt(ViewportBreakpointEnv, DefaultBreakpoint)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	conf.CatalogAPI = CatalogAPI{URL: os.Getenv(CatalogAPIURLEnv), Timeout: timeout}
	conf.Web = Web{Breakpoint: breakpoint}

	for _, validate := range []func() error{conf.validateServers, conf.validateCatalogAPI} {
		if err := validate(); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return conf, nil
}

// LoadNotifierFromEnv loads and validates the notification service configuration.
func LoadNotifierFromEnv() (*Config, error) {
	applyDefaultEnvFile()

	conf := base()
	if err := conf.validateQueue(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
