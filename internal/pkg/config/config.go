package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	LogPretty       bool          `env:"LOG_PRETTY,       default=false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	JWT       JWTConfig
	Security  SecurityConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Mail      MailConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
	Seed      SeedConfig
}

type JWTConfig struct {
	// Secret is the base64-encoded HS512 key; it must decode to at least 64 bytes.
	Secret       string `env:"JWT_SECRET,        required"`
	ExpirationMs int64  `env:"JWT_EXPIRATION_MS, default=86400000"`
}

type SecurityConfig struct {
	BcryptCost int `env:"BCRYPT_COST, default=10"`
}

type MongoConfig struct {
	URI       string `env:"MONGO_URI,         default=mongodb://localhost:27017"`
	Database  string `env:"MONGO_DB,          default=coaching_platform"`
	TLSCAFile string `env:"MONGO_TLS_CA_FILE"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MailConfig struct {
	// SendGridAPIKey enables real delivery; notifications are only logged without it.
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	FromAddress    string `env:"MAIL_FROM_ADDRESS,  default=no-reply@esportscoach.gg"`
	FromName       string `env:"MAIL_FROM_NAME,     default=eSports Coach"`
	Workers        int    `env:"MAIL_WORKERS,       default=4"`
	QueueSize      int    `env:"MAIL_QUEUE_SIZE,    default=256"`
}

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	AllowOrigins     []string `env:"CORS_ALLOWED_ORIGINS,   default=*"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS, default=true"`
	MaxAge           int      `env:"CORS_MAX_AGE,           default=3600"`
}

type RateLimitConfig struct {
	AuthRPS   float64 `env:"AUTH_RATE_LIMIT_RPS,   default=5"`
	AuthBurst int     `env:"AUTH_RATE_LIMIT_BURST, default=10"`
}

type BookingConfig struct {
	GuardWindow time.Duration `env:"BOOKING_GUARD_WINDOW, default=10m"`
}

// SeedConfig describes the staff accounts created at startup when missing.
type SeedConfig struct {
	Enabled       bool   `env:"SEED_ENABLED,        default=false"`
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	CoachUsername string `env:"SEED_COACH_USERNAME, default=coach"`
	CoachEmail    string `env:"SEED_COACH_EMAIL"`
	CoachPassword string `env:"SEED_COACH_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// TokenTTL returns the configured token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpirationMs) * time.Millisecond
}
