package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/m06522052-gif/AqeelApp/internal/config"
	"github.com/m06522052-gif/AqeelApp/internal/entity"
)

// DefaultAdminPassword is the dev fallback seed credential. Deployments must
// override it via admin.password / ADMIN_PASSWORD.
const DefaultAdminPassword = "Admin1234"

// Open connects to the configured backend. TranslateError is on so that
// uniqueness and foreign-key violations surface as gorm sentinel errors the
// handlers can map to domain messages.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	switch cfg.Driver {
	case "", "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		// _fk=1 turns on foreign key enforcement per connection.
		dsn := fmt.Sprintf("file:%s?_fk=1", cfg.Path)
		db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows one writer; a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
		)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Initialize migrates the schema and seeds the admin account. Idempotent:
// running it N times leaves one schema and one admin user.
func Initialize(db *gorm.DB, admin config.AdminConfig, log *zap.Logger) error {
	if err := entity.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return SeedAdmin(db, admin, log)
}

// SeedAdmin inserts the bootstrap administrator unless one already exists.
func SeedAdmin(db *gorm.DB, admin config.AdminConfig, log *zap.Logger) error {
	var existing entity.User
	err := db.Where("username = ?", admin.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seed user: %w", err)
	}

	password := admin.Password
	if password == "" {
		password = DefaultAdminPassword
		log.Warn("admin.password not set, seeding default dev credential",
			zap.String("username", admin.Username))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := entity.User{
		Username: admin.Username,
		Email:    admin.Email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		// a concurrent start may have seeded it first
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Info("seeded admin user", zap.String("username", user.Username))
	return nil
}
