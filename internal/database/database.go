package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voxcast/voxcast-api/internal/models"
)

type DB struct {
	*gorm.DB
}

// Initialize opens the sqlite database at dbPath, creating the parent
// directory if needed. Foreign keys are enabled so project deletes cascade
// to documents, chunks, generations and citations.
func Initialize(dbPath string, verbose bool) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// sqlite serializes writers; a small pool avoids lock contention
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Printf("Successfully migrated %d model(s)", len(models))
	return nil
}

// Migrate runs the full schema migration for every persisted model and seeds
// the built-in persona roster if it is not present yet.
func (db *DB) Migrate() error {
	if err := db.AutoMigrate(
		&models.Project{},
		&models.Document{},
		&models.DocumentChunk{},
		&models.AudioGeneration{},
		&models.Citation{},
		&models.Persona{},
		&models.Job{},
	); err != nil {
		return err
	}
	return db.SeedDefaultPersonas()
}

// SeedDefaultPersonas inserts the built-in roster when no default personas
// exist. Safe to call repeatedly.
func (db *DB) SeedDefaultPersonas() error {
	var count int64
	if err := db.DB.Model(&models.Persona{}).Where("is_custom = ?", false).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count default personas: %w", err)
	}
	if count > 0 {
		return nil
	}

	roster := models.DefaultPersonas()
	for i := range roster {
		roster[i].UUID = newUUID()
	}
	if err := db.DB.Create(&roster).Error; err != nil {
		return fmt.Errorf("failed to seed default personas: %w", err)
	}
	log.Printf("Seeded %d default personas", len(roster))
	return nil
}
