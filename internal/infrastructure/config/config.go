package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process-wide settings. It is loaded once at startup and
// passed by reference; nothing else in the codebase reads the environment.
type Config struct {
	Port     string `env:"PORT,        default=4000"`
	Env      string `env:"ENV,         default=development"`
	LogLevel string `env:"LOG_LEVEL,   default=info"`

	// JWTSecret signs session tokens. CookieName is the session cookie;
	// TokenTTL drives both the token expiry and the cookie max-age.
	JWTSecret  string        `env:"JWT_SECRET,  default=default-secret"`
	CookieName string        `env:"COOKIE_NAME, default=token"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=168h"`

	// AuthBackend selects the credential source: "demo" (fixed principal)
	// or "mongo" (persistent user store).
	AuthBackend  string `env:"AUTH_BACKEND,  default=demo"`
	DemoEmail    string `env:"DEMO_EMAIL,    default=demo@example.com"`
	DemoPassword string `env:"DEMO_PASSWORD, default=password123"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog"`
}

// IsProduction reports whether the service runs with production transport
// policy (secure cross-site cookies).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
