package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAppName          = "VolcanoAPI"
	defaultAppEnv           = "development"
	defaultPort             = "3000"
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultShutdownDelay    = 10 * time.Second
	defaultIdempotencyTTL   = 24 * time.Hour
	defaultTokenTTL         = 24 * time.Hour
	defaultCountriesTTL     = time.Hour
	defaultBcryptCost       = 10
	defaultLoginRateLimit   = 10
	defaultCORSAllowOrigins = "*"
	idemTTLSecondsEnvVar    = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar        = "IDEMPOTENCY_TTL"
	shutdownSecondsEnvVar   = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar  = "SHUTDOWN_TIMEOUT"
	tokenTTLSecondsEnvVar   = "TOKEN_TTL_SECONDS"
	tokenTTLDurEnvVar       = "TOKEN_TTL"
	countriesTTLEnvVar      = "COUNTRIES_CACHE_TTL"
	bcryptCostEnvVar        = "BCRYPT_COST"
	loginRateLimitEnvVar    = "LOGIN_RATE_LIMIT"
	defaultDBMaxConns       = 10
	defaultDBMinConns       = 1
	dbMaxConnsEnvVar        = "DB_MAX_CONNS"
	dbMinConnsEnvVar        = "DB_MIN_CONNS"
)

// Config captures application runtime configuration loaded from environment variables.
// It is read once at start and never mutated afterwards.
type Config struct {
	AppName          string
	AppEnv           string
	Port             string
	LogLevel         string
	LogFormat        string
	DatabaseURL      string
	RedisURL         string
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	ShutdownPeriod   time.Duration
	IdempotencyTTL   time.Duration
	CountriesTTL     time.Duration
	LoginRateLimit   int
	CORSAllowOrigins string
	DBMaxConns       int
	DBMinConns       int
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:          getEnv("APP_NAME", defaultAppName),
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		Port:             getEnv("PORT", defaultPort),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", defaultLogFormat)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenTTL:         defaultTokenTTL,
		BcryptCost:       defaultBcryptCost,
		ShutdownPeriod:   defaultShutdownDelay,
		IdempotencyTTL:   defaultIdempotencyTTL,
		CountriesTTL:     defaultCountriesTTL,
		LoginRateLimit:   defaultLoginRateLimit,
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", defaultCORSAllowOrigins),
		DBMaxConns:       defaultDBMaxConns,
		DBMinConns:       defaultDBMinConns,
	}

	var err error
	if cfg.ShutdownPeriod, err = durationFromEnv(shutdownSecondsEnvVar, shutdownDurationEnvVar, cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationFromEnv(idemTTLSecondsEnvVar, idemTTLDurEnvVar, cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = durationFromEnv(tokenTTLSecondsEnvVar, tokenTTLDurEnvVar, cfg.TokenTTL); err != nil {
		return Config{}, err
	}
	if v := os.Getenv(countriesTTLEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", countriesTTLEnvVar, err)
		}
		cfg.CountriesTTL = d
	}

	if v := os.Getenv(bcryptCostEnvVar); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", bcryptCostEnvVar, err)
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return Config{}, fmt.Errorf("invalid %s: must be between %d and %d", bcryptCostEnvVar, bcrypt.MinCost, bcrypt.MaxCost)
		}
		cfg.BcryptCost = cost
	}

	if v := os.Getenv(loginRateLimitEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", loginRateLimitEnvVar, err)
		}
		cfg.LoginRateLimit = n
	}

	if cfg.DBMaxConns, err = intFromEnv(dbMaxConnsEnvVar, cfg.DBMaxConns); err != nil {
		return Config{}, err
	}
	if cfg.DBMinConns, err = intFromEnv(dbMinConnsEnvVar, cfg.DBMinConns); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxConns < 1 || cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return Config{}, fmt.Errorf("invalid pool size: %s=%d %s=%d", dbMinConnsEnvVar, cfg.DBMinConns, dbMaxConnsEnvVar, cfg.DBMaxConns)
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("token ttl must be positive")
	}

	if cfg.DatabaseURL == "" && !cfg.IsDev() {
		return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the application runs in a local development mode.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// durationFromEnv prefers an integer seconds variable over a Go duration string.
func durationFromEnv(secondsKey, durationKey string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsKey); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsKey, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(durationKey); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", durationKey, err)
		}
		return d, nil
	}
	return fallback, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
