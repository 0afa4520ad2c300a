package config

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global session database instance
var DB *gorm.DB

// ConnectSessionDB opens the local SQLite file backing the session store.
// Page data is never persisted here; the remote API stays the source of
// truth for every entity.
func ConnectSessionDB(cfg *Config) (*gorm.DB, error) {
	var gormLogger logger.Interface
	if cfg.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Session.DBPath), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	DB = db

	log.Printf("✅ Session database opened [%s]", cfg.Session.DBPath)
	return db, nil
}

// CloseSessionDB closes the session database connection
func CloseSessionDB() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the session database
func HealthCheck() error {
	if DB == nil {
		return fmt.Errorf("session database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
