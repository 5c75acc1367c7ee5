package config

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	HTTP  HTTPConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens. The server refuses to start
	// without it.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	// LegacyExpiresIn is the older lifetime setting ("1d", "12h"). When set it
	// must agree with TokenTTL.
	LegacyExpiresIn string        `env:"JWT_EXPIRES_IN"`
	LookupTimeout   time.Duration `env:"LOOKUP_TIMEOUT, default=5s"`
}

type HTTPConfig struct {
	CORSOrigins     []string      `env:"CORS_ORIGINS,     default=*"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT,  default=10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT, default=15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT,  default=60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,   default=15s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=school_api"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables using go-envconfig and
// validates it.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom is Load with an explicit lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the single token lifetime and positive timeouts.
func (c *Config) Validate() error {
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Auth.LegacyExpiresIn != "" {
		legacy, err := ParseLifetime(c.Auth.LegacyExpiresIn)
		if err != nil {
			return fmt.Errorf("config: JWT_EXPIRES_IN: %w", err)
		}
		if legacy != c.Auth.TokenTTL {
			return fmt.Errorf("config: JWT_EXPIRES_IN (%s) conflicts with TOKEN_TTL (%s)", legacy, c.Auth.TokenTTL)
		}
	}
	if c.Auth.LookupTimeout <= 0 {
		return fmt.Errorf("config: LOOKUP_TIMEOUT must be positive, got %s", c.Auth.LookupTimeout)
	}
	return nil
}

// maxLifetimeDays is the largest day count a time.Duration can hold.
const maxLifetimeDays = int64(math.MaxInt64 / (24 * time.Hour))

// ParseLifetime accepts Go durations ("36h") and whole days ("1d").
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil || n <= 0 || n > maxLifetimeDays {
			return 0, fmt.Errorf("invalid lifetime %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid lifetime %q", s)
	}
	return d, nil
}
