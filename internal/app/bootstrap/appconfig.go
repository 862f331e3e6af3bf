// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (CAPRECON_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// handles framework-level settings (HTTP ports, TLS, logging, request
// limits); AppConfig is everything specific to this backend.
type AppConfig struct {
	// MongoDB connection configuration. MongoURI may be empty: the app then
	// starts in degraded mode where data endpoints fail explicitly and the
	// diagnostic endpoint reports the missing connection.
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// MongoConnectTimeout bounds the initial connect/ping at startup.
	MongoConnectTimeout time.Duration
}
