// Package config provides configuration management for the customer importer.
//
// Values come from environment variables, optionally seeded from a .env file,
// with defaults taken from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP listen address and timeouts
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the archive bucket
//   - Log: Logging level and format
//   - Provider: remote customer endpoint (PROVIDER_API_URL) and nationality
//   - Importer: default count, password hash cost and archiving
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
