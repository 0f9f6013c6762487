package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	StorageBackend string   `mapstructure:"STORAGE_BACKEND"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	RedisURL       string   `mapstructure:"REDIS_URL"`
	ClinicPIN      string   `mapstructure:"CLINIC_PIN"`
	SessionSecret  string   `mapstructure:"SESSION_SECRET"`
	SessionTTLMin  int      `mapstructure:"SESSION_TTL_MINUTES"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	GeminiAPIKey   string   `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string   `mapstructure:"GEMINI_MODEL"`
	ClinicName     string   `mapstructure:"CLINIC_NAME"`
	DoctorName     string   `mapstructure:"DOCTOR_NAME"`
	DoctorDegree   string   `mapstructure:"DOCTOR_DEGREE"`
	DoctorMobile   string   `mapstructure:"DOCTOR_MOBILE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORAGE_BACKEND", BackendPostgres)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("SESSION_TTL_MINUTES", 720)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("CLINIC_NAME", "Shree Samarth Krupa Clinic")
	v.SetDefault("DOCTOR_NAME", "Dr. Rupali Nilesh Kene")
	v.SetDefault("DOCTOR_DEGREE", "BHMS")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range []string{
		"PORT", "ENV", "STORAGE_BACKEND", "DATABASE_URL",
		"DB_MAX_CONNS", "DB_MIN_CONNS", "REDIS_URL",
		"CLINIC_PIN", "SESSION_SECRET", "SESSION_TTL_MINUTES",
		"CORS_ORIGINS", "GEMINI_API_KEY", "GEMINI_MODEL",
		"CLINIC_NAME", "DOCTOR_NAME", "DOCTOR_DEGREE", "DOCTOR_MOBILE",
	} {
		v.BindEnv(key)
	}

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		if origins := v.GetString("CORS_ORIGINS"); origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}

// Validate checks the configuration is safe to run: a PIN and session
// secret must be set, and the selected storage backend must have its
// connection URL.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND is %q", BackendPostgres)
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND is %q", BackendRedis)
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendRedis, c.StorageBackend)
	}

	if c.ClinicPIN == "" {
		return fmt.Errorf("CLINIC_PIN is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.SessionTTLMin <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	return nil
}
