package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:           "8000",
		Env:            "development",
		StorageBackend: BackendPostgres,
		DatabaseURL:    "postgres://localhost:5432/clinic",
		ClinicPIN:      "1234",
		SessionSecret:  "secret",
		SessionTTLMin:  720,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_PostgresNeedsDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing DATABASE_URL")
	}
}

func TestValidate_RedisNeedsRedisURL(t *testing.T) {
	cfg := validConfig()
	cfg.StorageBackend = BackendRedis
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing REDIS_URL")
	}
	cfg.RedisURL = "redis://localhost:6379/0"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := validConfig()
	cfg.StorageBackend = "sqlite"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestValidate_RequiresPINAndSecret(t *testing.T) {
	cfg := validConfig()
	cfg.ClinicPIN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing CLINIC_PIN")
	}

	cfg = validConfig()
	cfg.SessionSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing SESSION_SECRET")
	}
}

func TestSessionTTL(t *testing.T) {
	cfg := validConfig()
	if got := cfg.SessionTTL(); got != 12*time.Hour {
		t.Errorf("SessionTTL = %v, want 12h", got)
	}
}
