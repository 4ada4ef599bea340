// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL connection (the production target)
// or a SQLite database (local runs and tests) from the application's configuration.
// When Instrument is enabled the underlying database/sql driver is wrapped by
// otelsql, so every query produces an OpenTelemetry span and pool statistics are
// exported as metrics.
//
// # Schema Inspection
//
// GetTableColumns reads column definitions through SHOW COLUMNS (MySQL) or
// PRAGMA table_info (SQLite). MissingColumns builds on it for the integrity command.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "customers", []string{"id", "email"})
package database
