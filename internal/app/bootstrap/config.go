// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the catalogue API.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, bucket_name, etc.
//   - Environment variables: JEWELLERY_MONGO_URI, JEWELLERY_BUCKET_NAME, etc.
//   - Command-line flags: --mongo_uri, --bucket_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "jewellery_catalogue", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Image bucket configuration
	{Name: "bucket_endpoint", Default: "localhost:9000", Desc: "Bucket endpoint host:port (MinIO or S3-compatible)"},
	{Name: "bucket_name", Default: "images", Desc: "Bucket holding design images"},
	{Name: "bucket_access_key", Default: "", Desc: "Bucket access key"},
	{Name: "bucket_secret_key", Default: "", Desc: "Bucket secret key"},
	{Name: "bucket_use_ssl", Default: false, Desc: "Reach the bucket endpoint over TLS"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, JEWELLERY_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "JEWELLERY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		BucketEndpoint:  appValues.String("bucket_endpoint"),
		BucketName:      appValues.String("bucket_name"),
		BucketAccessKey: appValues.String("bucket_access_key"),
		BucketSecretKey: appValues.String("bucket_secret_key"),
		BucketUseSSL:    appValues.Bool("bucket_use_ssl"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.BucketEndpoint == "" {
		return fmt.Errorf("bucket_endpoint must be set")
	}
	if appCfg.BucketName == "" {
		return fmt.Errorf("bucket_name must be set")
	}

	return nil
}
