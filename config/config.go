package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Development defaults that production refuses to start with.
const (
	DefaultJWTSecret     = "blightwatch-dev-secret"
	DefaultAdminPassword = "admin123"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string
	Domain   string

	StoreBackend    string
	MongoURI        string
	MongoDatabase   string
	SessionBackend  string
	RedisAddress    string
	RedisPassword   string
	RedisDB         int
	RateLimitPrefix string

	JWTSecret       string
	TokenTTL        time.Duration
	SessionTTL      time.Duration
	VerificationTTL time.Duration

	AdminEmail    string
	AdminPassword string

	CaseSubmitLimit     int
	CaseSubmitWindow    time.Duration
	AuthAttemptLimit    int
	AuthAttemptWindow   time.Duration
	ReviewUpdatesStatus bool
	CORSOrigins         []string
	TrustedProxies      []string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOMAIN", "localhost")

	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "blightwatch")
	v.SetDefault("SESSION_BACKEND", BackendMemory)
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_PREFIX", "case_submit")

	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("SESSION_TTL", 30*24*time.Hour)
	v.SetDefault("VERIFICATION_TTL", 10*time.Minute)

	v.SetDefault("ADMIN_EMAIL", "admin@myport901.gov")
	v.SetDefault("ADMIN_PASSWORD", DefaultAdminPassword)

	v.SetDefault("CASE_SUBMIT_LIMIT", 5)
	v.SetDefault("CASE_SUBMIT_WINDOW", 24*time.Hour)
	v.SetDefault("AUTH_ATTEMPT_LIMIT", 10)
	v.SetDefault("AUTH_ATTEMPT_WINDOW", 15*time.Minute)
	v.SetDefault("REVIEW_UPDATES_STATUS", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("TRUSTED_PROXIES", "")
}

// Load reads an optional .env file, then the environment, then applies
// defaults for anything unset.
func Load() (*Config, error) {
	// A missing .env is normal in containers.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env:      strings.ToLower(v.GetString("GO_ENV")),
		Port:     v.GetString("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Domain:   v.GetString("DOMAIN"),

		StoreBackend:    strings.ToLower(v.GetString("STORE_BACKEND")),
		MongoURI:        v.GetString("MONGODB_URI"),
		MongoDatabase:   v.GetString("MONGODB_DATABASE"),
		SessionBackend:  strings.ToLower(v.GetString("SESSION_BACKEND")),
		RedisAddress:    v.GetString("REDIS_ADDRESS"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RateLimitPrefix: v.GetString("RATE_LIMIT_PREFIX"),

		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        v.GetDuration("TOKEN_TTL"),
		SessionTTL:      v.GetDuration("SESSION_TTL"),
		VerificationTTL: v.GetDuration("VERIFICATION_TTL"),

		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),

		CaseSubmitLimit:     v.GetInt("CASE_SUBMIT_LIMIT"),
		CaseSubmitWindow:    v.GetDuration("CASE_SUBMIT_WINDOW"),
		AuthAttemptLimit:    v.GetInt("AUTH_ATTEMPT_LIMIT"),
		AuthAttemptWindow:   v.GetDuration("AUTH_ATTEMPT_WINDOW"),
		ReviewUpdatesStatus: v.GetBool("REVIEW_UPDATES_STATUS"),
		CORSOrigins:         splitList(v.GetString("CORS_ORIGINS")),
		TrustedProxies:      splitList(v.GetString("TRUSTED_PROXIES")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case BackendMemory, BackendMongo:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.StoreBackend))
	}
	switch c.SessionBackend {
	case BackendMemory, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.SessionBackend))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD must not be empty"))
	}
	if c.IsProduction() && c.AdminPassword == DefaultAdminPassword {
		errs = append(errs, errors.New("ADMIN_PASSWORD must be set in production"))
	}
	if len(c.CORSOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ORIGINS must list at least one origin"))
	}
	if c.CaseSubmitLimit < 1 {
		errs = append(errs, fmt.Errorf("CASE_SUBMIT_LIMIT must be positive, got %d", c.CaseSubmitLimit))
	}
	if c.AuthAttemptLimit < 1 {
		errs = append(errs, fmt.Errorf("AUTH_ATTEMPT_LIMIT must be positive, got %d", c.AuthAttemptLimit))
	}
	if c.TokenTTL <= 0 || c.SessionTTL <= 0 || c.VerificationTTL <= 0 || c.CaseSubmitWindow <= 0 || c.AuthAttemptWindow <= 0 {
		errs = append(errs, errors.New("TTL and window settings must be positive durations"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
