package config

import "github.com/spf13/viper"

// Constants for keys
const (
	keyServiceName    = "SERVICE_NAME"
	keyServiceVersion = "SERVICE_VERSION"
	keyEnvironment    = "ENVIRONMENT"
	keyLogLevel       = "LOG_LEVEL"
	keyLogFormat      = "LOG_FORMAT"
	keyPort           = "PORT"

	keyDataFilePath            = "DATA_FILE_PATH"
	keyProductSourceURL        = "PRODUCT_SOURCE_URL"
	keyProductSourceTimeoutSec = "PRODUCT_SOURCE_TIMEOUT_SEC"

	keySkeletonCount = "CATALOG_SKELETON_COUNT"
	keyTiltStrength  = "CATALOG_TILT_STRENGTH"

	keyDefaultTheme    = "CHROME_DEFAULT_THEME"
	keyScrollThreshold = "CHROME_SCROLL_THRESHOLD"
	keyFadeThreshold   = "CHROME_FADE_THRESHOLD"

	keyAdminPublisher  = "ADMIN_PUBLISHER"
	keyAdminPublishURL = "ADMIN_PUBLISH_URL"

	keyOtelEnabled      = "OTEL_ENABLED"
	keyOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	keyOtelInsecure     = "OTEL_EXPORTER_INSECURE"
	keyOtelSampleRatio  = "OTEL_SAMPLE_RATIO"
	keyOtelBatchTimeout = "OTEL_BATCH_TIMEOUT_MS"

	keySimulateDelayEnabled = "SIMULATE_DELAY_ENABLED"
	keySimulateDelayMinMs   = "SIMULATE_DELAY_MIN_MS"
	keySimulateDelayMaxMs   = "SIMULATE_DELAY_MAX_MS"
	keySimulateErrorChance  = "SIMULATE_ERROR_CHANCE"

	keyShutdownTotalTimeout  = "SHUTDOWN_TOTAL_TIMEOUT_SEC"
	keyShutdownServerTimeout = "SHUTDOWN_SERVER_TIMEOUT_SEC"
	keyShutdownOtelTimeout   = "SHUTDOWN_OTEL_MIN_TIMEOUT_SEC"
)

// setDefaults registers every key with viper. AutomaticEnv only feeds
// Unmarshal for keys viper already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyServiceName, "getdeal-catalog")
	v.SetDefault(keyServiceVersion, "dev")
	v.SetDefault(keyEnvironment, "development")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "json")
	v.SetDefault(keyPort, 8080)

	v.SetDefault(keyDataFilePath, "catalog-service/data/products.json")
	v.SetDefault(keyProductSourceURL, "")
	v.SetDefault(keyProductSourceTimeoutSec, 10)

	v.SetDefault(keySkeletonCount, 6)
	v.SetDefault(keyTiltStrength, 12)

	v.SetDefault(keyDefaultTheme, "light")
	v.SetDefault(keyScrollThreshold, 360)
	v.SetDefault(keyFadeThreshold, 0.12)

	v.SetDefault(keyAdminPublisher, "display")
	v.SetDefault(keyAdminPublishURL, "")

	v.SetDefault(keyOtelEnabled, false)
	v.SetDefault(keyOtelEndpoint, "localhost:4317")
	v.SetDefault(keyOtelInsecure, true)
	v.SetDefault(keyOtelSampleRatio, 1.0)
	v.SetDefault(keyOtelBatchTimeout, 5000)

	v.SetDefault(keySimulateDelayEnabled, false)
	v.SetDefault(keySimulateDelayMinMs, 0)
	v.SetDefault(keySimulateDelayMaxMs, 600)
	v.SetDefault(keySimulateErrorChance, 0.0)

	v.SetDefault(keyShutdownTotalTimeout, 30)
	v.SetDefault(keyShutdownServerTimeout, 10)
	v.SetDefault(keyShutdownOtelTimeout, 5)
}
