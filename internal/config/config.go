package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/dxlr/storefront/internal/cart"
)

type Config struct {
	ServerPort      string
	DBPath          string
	KafkaAddress    string
	LogLevel        string
	CheckoutDelay   time.Duration
	NewsletterDelay time.Duration
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		ServerPort:      getenv("SERVER_PORT", "8080"),
		DBPath:          getenv("CART_DB_PATH", "storefront.db"),
		KafkaAddress:    os.Getenv("KAFKA_ADDRESS"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		CheckoutDelay:   getDuration("CHECKOUT_DELAY", 2*time.Second),
		NewsletterDelay: getDuration("NEWSLETTER_DELAY", 1500*time.Millisecond),
	}

	return cfg, nil
}

func getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getDuration(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Notice: invalid %s=%q, using %s", name, v, def)
		return def
	}
	return d
}

// InitDB opens the embedded snapshot database and migrates the single
// table the cart persists into.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := db.AutoMigrate(&cart.SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return db, nil
}
