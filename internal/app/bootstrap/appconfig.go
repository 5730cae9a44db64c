// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to the catalogue API lives: the
// MongoDB connection, and the bucket holding design images.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Image bucket configuration (MinIO or any S3-compatible endpoint)
	BucketEndpoint  string // Host:port of the bucket endpoint (e.g., localhost:9000)
	BucketName      string // Bucket holding design images
	BucketAccessKey string // Access key for the bucket endpoint
	BucketSecretKey string // Secret key for the bucket endpoint
	BucketUseSSL    bool   // Whether to reach the bucket endpoint over TLS
}
