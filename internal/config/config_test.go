package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost != defaultBcryptCost {
		t.Fatalf("expected bcrypt cost %d, got %d", defaultBcryptCost, cfg.BcryptCost)
	}
	if cfg.Address() != ":3000" {
		t.Fatalf("unexpected address %q", cfg.Address())
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoadRequiresDatabaseOutsideDev(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestLoadRejectsBcryptCostOutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "development")
	t.Setenv("BCRYPT_COST", "99")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bcrypt cost 99")
	}
}

func TestLoadTokenTTLSecondsWins(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "development")
	t.Setenv("TOKEN_TTL_SECONDS", "60")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != time.Minute {
		t.Fatalf("expected 1m token ttl, got %s", cfg.TokenTTL)
	}
}

func TestLoadPoolSizing(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBMaxConns != 4 || cfg.DBMinConns != 2 {
		t.Fatalf("unexpected pool sizing %d/%d", cfg.DBMinConns, cfg.DBMaxConns)
	}

	t.Setenv("DB_MIN_CONNS", "5")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when min conns exceed max conns")
	}
}
