package gorm

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"beltempo/pkg/resource"
)

// Config holds the PostgreSQL connection settings read from app.db.*
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

// ConfigFromProperties reads app.db.* from the application properties
func ConfigFromProperties() Config {
	return Config{
		Host:     resource.GetString("app.db.host"),
		Port:     resource.GetString("app.db.port"),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetString("app.db.schema"),
	}
}

// DSN renders the libpq keyword/value connection string
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, c.Schema)
}

// Open connects to PostgreSQL. The pool is small: the reference tables are read-only.
func Open(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database %s@%s: %w", config.Database, config.Host, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
