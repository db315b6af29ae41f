// Package config manages application configuration for the ConectaVagas API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing settings
//   - StaticConfig: SPA frontend directory
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 3000)
//	SERVER_ENV           - development, production or test
//	CORS_ALLOWED_ORIGINS - comma-separated origin list (default: *)
//	DB_HOST / DB_PORT    - SurrealDB endpoint
//	DB_NAMESPACE         - Database namespace (default: conectavagas)
//	DB_DATABASE          - Database name (default: main)
//	DB_USER / DB_PASSWORD - Database credentials
//	JWT_SECRET           - Token signing secret (required)
//	JWT_EXPIRATION_DAYS  - Token lifetime in days (default: 7)
//	STATIC_DIR           - SPA directory; empty disables static serving
package config
