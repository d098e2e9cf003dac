package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/segyhp/affordability-engine/internal/calculator"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:",squash"`
	Database  DatabaseConfig  `mapstructure:",squash"`
	Redis     RedisConfig     `mapstructure:",squash"`
	Scheduler SchedulerConfig `mapstructure:",squash"`
	Search    SearchConfig    `mapstructure:",squash"`
	RateLimit RateLimitConfig `mapstructure:",squash"`
	Health    HealthConfig    `mapstructure:",squash"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"DATABASE_DRIVER"`
	URL             string `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime string `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"REDIS_ENABLED"`
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
	CacheTTL string `mapstructure:"CACHE_TTL"`
}

type SchedulerConfig struct {
	PurgeSchedule string `mapstructure:"PURGE_SCHEDULE"`
	Timezone      string `mapstructure:"SCHEDULER_TIMEZONE"`
	Retention     string `mapstructure:"CALCULATION_RETENTION"`
}

type SearchConfig struct {
	MinPrice      int64  `mapstructure:"SEARCH_MIN_PRICE"`
	MaxPrice      int64  `mapstructure:"SEARCH_MAX_PRICE"`
	MaxIterations int    `mapstructure:"SEARCH_MAX_ITERATIONS"`
	Tolerance     int64  `mapstructure:"SEARCH_TOLERANCE"`
	LMIStep       string `mapstructure:"SEARCH_LMI_STEP"`
	Strategy      string `mapstructure:"SEARCH_STRATEGY"`
}

type RateLimitConfig struct {
	Requests int    `mapstructure:"RATE_LIMIT_REQUESTS"`
	Window   string `mapstructure:"RATE_LIMIT_WINDOW"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"SERVER_PORT":                "8080",
	"SERVER_HOST":                "0.0.0.0",
	"ENV":                        "development",
	"SERVER_READ_TIMEOUT":        "15s",
	"SERVER_WRITE_TIMEOUT":       "15s",
	"DATABASE_DRIVER":            "postgres",
	"DATABASE_URL":               "",
	"DATABASE_MAX_OPEN_CONNS":    10,
	"DATABASE_MAX_IDLE_CONNS":    5,
	"DATABASE_CONN_MAX_LIFETIME": "30m",
	"REDIS_ENABLED":              true,
	"REDIS_HOST":                 "localhost",
	"REDIS_PORT":                 "6379",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"CACHE_TTL":                  "1h",
	"PURGE_SCHEDULE":             "0 0 3 * * *",
	"SCHEDULER_TIMEZONE":         "Australia/Sydney",
	"CALCULATION_RETENTION":      "720h",
	"SEARCH_MIN_PRICE":           100000,
	"SEARCH_MAX_PRICE":           10000000,
	"SEARCH_MAX_ITERATIONS":      50,
	"SEARCH_TOLERANCE":           1000,
	"SEARCH_LMI_STEP":            "0.1",
	"SEARCH_STRATEGY":            string(calculator.StrategyOptimized),
	"RATE_LIMIT_REQUESTS":        60,
	"RATE_LIMIT_WINDOW":          "1m",
	"HEALTH_CHECK_TIMEOUT":       "5s",
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	return LoadFrom(".env", "./deployments/.env")
}

// LoadFrom is Load with explicit .env locations. Missing files are skipped;
// variables already set in the environment win over file values.
func LoadFrom(envFiles ...string) (*Config, error) {
	return load(nil, envFiles...)
}

// LoadLocal is the CLI configuration: environment and .env values as usual,
// but history is always kept in the SQLite file at dbPath.
func LoadLocal(dbPath string) (*Config, error) {
	return load(map[string]interface{}{
		"DATABASE_DRIVER":         "sqlite",
		"DATABASE_URL":            dbPath,
		"DATABASE_MAX_OPEN_CONNS": 1,
	}, ".env")
}

func load(overrides map[string]interface{}, envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", file, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	for key, value := range overrides {
		v.Set(key, value)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.Database.Driver)
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	durations := map[string]string{
		"SERVER_READ_TIMEOUT":        c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":       c.Server.WriteTimeout,
		"DATABASE_CONN_MAX_LIFETIME": c.Database.ConnMaxLifetime,
		"CACHE_TTL":                  c.Redis.CacheTTL,
		"CALCULATION_RETENTION":      c.Scheduler.Retention,
		"RATE_LIMIT_WINDOW":          c.RateLimit.Window,
		"HEALTH_CHECK_TIMEOUT":       c.Health.Timeout,
	}
	for key, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", key, err)
		}
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be greater than 0")
	}

	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("SCHEDULER_TIMEZONE must be a valid IANA zone: %w", err)
	}

	if _, err := decimal.NewFromString(c.Search.LMIStep); err != nil {
		return fmt.Errorf("SEARCH_LMI_STEP must be a valid decimal: %w", err)
	}

	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("invalid search configuration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// Address returns host:port for the HTTP server
func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

// RedisAddress returns host:port for the Redis client
func (c *Config) RedisAddress() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// EngineConfig builds the affordability search bounds
func (c *Config) EngineConfig() calculator.SearchConfig {
	cfg := calculator.DefaultSearchConfig()
	cfg.MinPrice = c.Search.MinPrice
	cfg.MaxPrice = c.Search.MaxPrice
	cfg.MaxIterations = c.Search.MaxIterations
	cfg.Tolerance = c.Search.Tolerance
	cfg.Strategy = calculator.Strategy(c.Search.Strategy)
	if step, err := decimal.NewFromString(c.Search.LMIStep); err == nil {
		cfg.LMIStep = step
	}
	return cfg
}

// GetLocation returns the scheduler time zone
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout)
}

func (c *Config) GetWriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout)
}

func (c *Config) GetConnMaxLifetime() time.Duration {
	return parseDuration(c.Database.ConnMaxLifetime)
}

// GetCacheTTL returns how long cached results live
func (c *Config) GetCacheTTL() time.Duration {
	return parseDuration(c.Redis.CacheTTL)
}

// GetRetention returns how long calculations are kept before purging
func (c *Config) GetRetention() time.Duration {
	return parseDuration(c.Scheduler.Retention)
}

func (c *Config) GetRateLimitWindow() time.Duration {
	return parseDuration(c.RateLimit.Window)
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	return parseDuration(c.Health.Timeout)
}

// parseDuration parses a duration already checked by Validate; invalid input yields 0.
func parseDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
