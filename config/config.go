package config

import (
	"LocalizationAPI/models"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds everything the service reads from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBSSLMode  string `env:"DB_SSLMODE"`
	DBFile     string `env:"DB_FILE" envDefault:"localization.db"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// InitDatabase connects to the configured database and prepares the schema.
func InitDatabase(cfg Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		log.Printf("Connecting to database: driver=sqlite file=%s", cfg.DBFile)
		dialector = sqlite.Open(cfg.DBFile)
	default:
		// Hosted Supabase databases require TLS
		sslmode := cfg.DBSSLMode
		if sslmode == "" {
			if strings.Contains(cfg.DBHost, "supabase.co") {
				sslmode = "require"
			} else {
				sslmode = "disable"
			}
		}

		log.Printf("Connecting to database: host=%s user=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBName, cfg.DBPort, sslmode)

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslmode)
		dialector = postgres.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Successfully connected to database!")

	DB.AutoMigrate(&models.TranslationKey{})
}
