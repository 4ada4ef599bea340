package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.nhat.io/otelsql"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Connect opens the configured database and verifies it with a ping.
// It returns a *gorm.DB connection or an error if the connection fails.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dialector, err := dialectorFor(cfg, timeout)
	if err != nil {
		return nil, err
	}

	// Suppress GORM logging; callers log through zap.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// Every new connection to ":memory:" would see an empty database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if cfg.Instrument {
		if err := otelsql.RecordStats(sqlDB, otelsql.WithSystem(systemAttribute(cfg.Driver))); err != nil {
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg Config, timeout int) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		if cfg.Instrument {
			driverName, err := instrumentedDriver("sqlite3", cfg.Driver, cfg.Name)
			if err != nil {
				return nil, err
			}
			return sqlite.New(sqlite.Config{DriverName: driverName, DSN: cfg.Name}), nil
		}
		return sqlite.Open(cfg.Name), nil

	case DriverMySQL, "":
		// Special characters in the password must be URL encoded in the DSN.
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

		if cfg.Instrument {
			driverName, err := instrumentedDriver("mysql", DriverMySQL, cfg.Name)
			if err != nil {
				return nil, err
			}
			return mysql.New(mysql.Config{DriverName: driverName, DSN: dsn}), nil
		}
		return mysql.Open(dsn), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// instrumentedDriver registers an otelsql wrapper around the named sql driver.
func instrumentedDriver(sqlDriver, driver, dbName string) (string, error) {
	name, err := otelsql.Register(sqlDriver,
		otelsql.AllowRoot(),
		otelsql.TraceQueryWithoutArgs(),
		otelsql.TraceRowsClose(),
		otelsql.TraceRowsAffected(),
		otelsql.WithDatabaseName(dbName),
		otelsql.WithSystem(systemAttribute(driver)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to instrument %s driver: %w", sqlDriver, err)
	}
	return name, nil
}

func systemAttribute(driver string) attribute.KeyValue {
	if driver == DriverSQLite {
		return semconv.DBSystemSqlite
	}
	return semconv.DBSystemMySQL
}
