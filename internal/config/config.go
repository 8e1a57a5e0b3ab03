package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	App         AppConfig
	Appointment AppointmentConfig
	Waitlist    WaitlistConfig
	RateLimit   RateLimitConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AppointmentConfig holds slot validation policy. PreventDoubleBooking turns
// overlapping bookings for one employee into a validation failure;
// StrictOvernight requires overnight slots to fit entirely inside an
// overnight shift rather than touching either side of it.
type AppointmentConfig struct {
	PreventDoubleBooking bool
	StrictOvernight      bool
}

// WaitlistConfig controls claim token lifetime and the background sweep that
// returns expired entries to the waiting state.
type WaitlistConfig struct {
	ClaimTTL      time.Duration
	SweepInterval time.Duration
}

type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

func Load() (*Config, error) {
	// .env is optional; production supplies real environment variables
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "salon"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Appointment policy
	config.Appointment = AppointmentConfig{
		PreventDoubleBooking: getEnv("APPOINTMENT_PREVENT_DOUBLE_BOOKING", "false") == "true",
		StrictOvernight:      getEnv("APPOINTMENT_STRICT_OVERNIGHT", "false") == "true",
	}

	// Waitlist configuration
	claimTTL, err := time.ParseDuration(getEnv("WAITLIST_CLAIM_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid WAITLIST_CLAIM_TTL: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("WAITLIST_SWEEP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid WAITLIST_SWEEP_INTERVAL: %w", err)
	}

	config.Waitlist = WaitlistConfig{
		ClaimTTL:      claimTTL,
		SweepInterval: sweepInterval,
	}

	// Rate limit configuration
	rateCapacity, err := strconv.Atoi(getEnv("RATE_LIMIT_CAPACITY", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CAPACITY: %w", err)
	}
	rateRefill, err := strconv.Atoi(getEnv("RATE_LIMIT_REFILL_TOKENS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_TOKENS: %w", err)
	}
	rateInterval, err := time.ParseDuration(getEnv("RATE_LIMIT_REFILL_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_INTERVAL: %w", err)
	}

	config.RateLimit = RateLimitConfig{
		Enabled:        getEnv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       rateCapacity,
		RefillTokens:   rateRefill,
		RefillInterval: rateInterval,
		TTL:            2 * rateInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Waitlist.ClaimTTL <= 0 {
		return fmt.Errorf("WAITLIST_CLAIM_TTL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
