package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIAddress string `envconfig:"API_ADDRESS" default:":8080"`
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Timezone   string `envconfig:"APP_TIMEZONE" default:"UTC"`

	PostgresAddress  string `envconfig:"POSTGRES_DB_ADDRESS" default:"localhost:5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" required:"true"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"agencydesk"`
	DBMaxConns       int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns       int32  `envconfig:"DB_MIN_CONNS" default:"2"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"1h"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"30"`
	CORSOrigins    string  `envconfig:"CORS_ORIGINS" default:"*"`

	// Empty token disables the daily digest.
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	DigestSchedule   string `envconfig:"DIGEST_SCHEDULE" default:"0 9 * * *"`
}

// Load reads envFile when it exists and then maps the environment onto Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return errors.New("invalid DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func (c *Config) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", c.PostgresUser, c.PostgresPassword, c.PostgresAddress, c.PostgresDB)
}
