// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP port and TLS,
// logging level and format, CORS, request body limits). AppConfig is where
// everything specific to the ERIKA backend lives: the MongoDB connection,
// and the place-lookup service used to verify schools at registration time.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Place lookup (Photon) configuration
	PhotonBaseURL string        // Base URL of the Photon instance (e.g., https://photon.komoot.io)
	PhotonTimeout time.Duration // Per-request timeout for lookup calls
}
