package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"production"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"courtside"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Optional; publishing and the notification consumer are disabled when empty.
	RabbitURL string `envconfig:"RABBIT_URL"`
	// Optional; logout revocation is disabled when empty.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	Timezone        string `envconfig:"APP_TIMEZONE" default:"Local"`
	CurrencySymbol  string `envconfig:"CURRENCY_SYMBOL" default:"₹"`
	LoginRatePerMin int    `envconfig:"LOGIN_RATE_PER_MIN" default:"5"`

	loc *time.Location
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load config: APP_TIMEZONE: %w", err)
	}
	cfg.loc = loc
	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Location is the zone whose calendar days bucket the revenue trend.
// It is resolved once by Load; a Config built by hand falls back to time.Local.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
