package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/warungdev/tokocli/internal/hash"
	"github.com/warungdev/tokocli/internal/models"
)

type Config struct {
	DB_DRIVER      string
	DB_PATH        string
	DB_HOST        string
	DB_PORT        string
	DB_USER        string
	DB_PASSWORD    string
	DB_NAME        string
	ADMIN_USERNAME string
	ADMIN_PASSWORD string
	LOG_LEVEL      string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_DRIVER:      getenv("DB_DRIVER", "sqlite"),
		DB_PATH:        getenv("DB_PATH", "tokocli.db"),
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        os.Getenv("DB_PORT"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		ADMIN_USERNAME: getenv("ADMIN_USERNAME", "admin"),
		ADMIN_PASSWORD: getenv("ADMIN_PASSWORD", "admin123"),
		LOG_LEVEL:      getenv("LOG_LEVEL", "info"),
	}

	return config, nil
}

// InitDB opens the store, migrates the schema and seeds the default admin
// account. Lifecycle is init -> serve operations -> close.
func InitDB(configuration *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch configuration.DB_DRIVER {
	case "sqlite":
		dial = sqlite.Open(configuration.DB_PATH)
	case "postgres":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			configuration.DB_USER,
			configuration.DB_PASSWORD,
			configuration.DB_HOST,
			configuration.DB_PORT,
			configuration.DB_NAME,
		)
		dial = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", configuration.DB_DRIVER)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to db: %w", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderLine{},
	); err != nil {
		return nil, fmt.Errorf("cannot migrate schema: %w", err)
	}
	if err := seedAdmin(db, configuration); err != nil {
		return nil, fmt.Errorf("cannot seed admin: %w", err)
	}
	return db, nil
}

func seedAdmin(db *gorm.DB, configuration *Config) error {
	var admin models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	pwHash, err := hash.HashPassword(configuration.ADMIN_PASSWORD)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Username:     configuration.ADMIN_USERNAME,
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	}).Error
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
