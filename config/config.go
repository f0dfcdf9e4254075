package config

import (
	"fmt"
	"os"

	"github.com/abdulazeespr/HungryGo/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port string
	Env  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret           string
	StripeSecretKey     string
	StripeWebhookSecret string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                GetEnvOrDefault("PORT", "3000"),
		Env:                 GetEnvOrDefault("ENV", "development"),
		DBHost:              GetEnvOrDefault("DB_HOST", "localhost"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBPort:              GetEnvOrDefault("DB_PORT", "5432"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// InitDB opens the postgres connection and migrates the schema. The returned
// handle is injected into services; nothing holds it as package state.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MealPlan{},
		&models.Meal{},
		&models.Order{},
		&models.OrderMeal{},
		&models.Subscription{},
		&models.Payment{},
		&models.SupportTicket{},
		&models.TicketResponse{},
	)
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
