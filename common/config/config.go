package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/git-pranav2004/getdeal/common/validator"
)

// Initialize a minimal logger for config loading phase
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

// Config holds all configuration settings
type Config struct {
	// Service information
	ServiceName    string `mapstructure:"SERVICE_NAME" validate:"required"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION" validate:"required"`
	Environment    string `mapstructure:"ENVIRONMENT" validate:"required"`

	// Logging configuration
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=text json"`

	Port int `mapstructure:"PORT" validate:"min=1,max=65535"`

	// Product source: the local data file, or a remote URL when set
	DataFilePath            string `mapstructure:"DATA_FILE_PATH" validate:"required"`
	ProductSourceURL        string `mapstructure:"PRODUCT_SOURCE_URL" validate:"omitempty,url"`
	ProductSourceTimeoutSec int    `mapstructure:"PRODUCT_SOURCE_TIMEOUT_SEC" validate:"min=1"`

	// Catalog rendering
	SkeletonCount int     `mapstructure:"CATALOG_SKELETON_COUNT" validate:"min=0,max=48"`
	TiltStrength  float64 `mapstructure:"CATALOG_TILT_STRENGTH" validate:"gte=0,lte=45"`

	// UI chrome
	DefaultTheme    string  `mapstructure:"CHROME_DEFAULT_THEME" validate:"oneof=dark light"`
	ScrollThreshold int     `mapstructure:"CHROME_SCROLL_THRESHOLD" validate:"min=0"`
	FadeThreshold   float64 `mapstructure:"CHROME_FADE_THRESHOLD" validate:"gte=0,lte=1"`

	// Admin helper
	AdminPublisher  string `mapstructure:"ADMIN_PUBLISHER" validate:"oneof=display file http"`
	AdminPublishURL string `mapstructure:"ADMIN_PUBLISH_URL" validate:"required_if=AdminPublisher http,omitempty,url"`

	// OpenTelemetry configuration
	OtelEnabled        bool    `mapstructure:"OTEL_ENABLED"`
	OtelEndpoint       string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"required_if=OtelEnabled true"`
	OtelInsecure       bool    `mapstructure:"OTEL_EXPORTER_INSECURE"`
	OtelSampleRatio    float64 `mapstructure:"OTEL_SAMPLE_RATIO" validate:"gte=0,lte=1"`
	OtelBatchTimeoutMs int     `mapstructure:"OTEL_BATCH_TIMEOUT_MS" validate:"min=0"`

	// Debug simulation of a slow or failing product source
	SimulateDelayEnabled bool    `mapstructure:"SIMULATE_DELAY_ENABLED"`
	SimulateDelayMinMs   int     `mapstructure:"SIMULATE_DELAY_MIN_MS" validate:"min=0"`
	SimulateDelayMaxMs   int     `mapstructure:"SIMULATE_DELAY_MAX_MS" validate:"gtefield=SimulateDelayMinMs"`
	SimulateErrorChance  float64 `mapstructure:"SIMULATE_ERROR_CHANCE" validate:"gte=0,lte=1"`

	// Shutdown timeouts, in seconds
	ShutdownTotalTimeoutSec  int `mapstructure:"SHUTDOWN_TOTAL_TIMEOUT_SEC" validate:"min=0"`
	ShutdownServerTimeoutSec int `mapstructure:"SHUTDOWN_SERVER_TIMEOUT_SEC" validate:"min=0"`
	ShutdownOtelTimeoutSec   int `mapstructure:"SHUTDOWN_OTEL_MIN_TIMEOUT_SEC" validate:"min=0"`
}

// LoadConfig reads .env (if present), an optional CONFIG_FILE and the
// environment, in increasing order of precedence, and validates the result.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		configLogger.WithError(err).Warn("Failed to parse .env file, continuing with process environment")
	}

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		configLogger.WithField("file", v.ConfigFileUsed()).Info("Config file loaded")
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Log()
	return cfg, nil
}

// NewDefaultConfig provides a configuration with the registered defaults
// and no environment overlay. Tests and the CLI start from it.
func NewDefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Sprintf("default config does not unmarshal: %v", err))
	}
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) ProductSourceTimeout() time.Duration {
	return time.Duration(c.ProductSourceTimeoutSec) * time.Second
}

func (c *Config) OtelBatchTimeout() time.Duration {
	return time.Duration(c.OtelBatchTimeoutMs) * time.Millisecond
}

func (c *Config) ShutdownTotalTimeout() time.Duration {
	return time.Duration(c.ShutdownTotalTimeoutSec) * time.Second
}

func (c *Config) ShutdownServerTimeout() time.Duration {
	return time.Duration(c.ShutdownServerTimeoutSec) * time.Second
}

func (c *Config) ShutdownOtelTimeout() time.Duration {
	return time.Duration(c.ShutdownOtelTimeoutSec) * time.Second
}

// Log logs the current configuration
func (c *Config) Log() {
	configLogger.WithFields(logrus.Fields{
		"service_name":       c.ServiceName,
		"service_version":    c.ServiceVersion,
		"environment":        c.Environment,
		"log_level":          c.LogLevel,
		"log_format":         c.LogFormat,
		"port":               c.Port,
		"data_file_path":     c.DataFilePath,
		"product_source_url": c.ProductSourceURL,
		"admin_publisher":    c.AdminPublisher,
		"otel_enabled":       c.OtelEnabled,
		"otel_endpoint":      c.OtelEndpoint,
		"simulate_delay":     c.SimulateDelayEnabled,
	}).Info("Configuration loaded")
}
