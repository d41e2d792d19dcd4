// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Holiday calendar sources accepted by HOLIDAY_SOURCE.
const (
	HolidaySourceStatic = "static"
	HolidaySourceFile   = "file"
	HolidaySourceRules  = "rules"
	HolidaySourceUnion  = "union"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetShutdownTimeout() time.Duration
}

// SchedulingConfig provides settings for appointment slot generation.
type SchedulingConfig interface {
	GetBusinessTimezone() string
	GetHolidaySource() string
	GetHolidayFile() string
	GetHolidayRulesYears() (int, int)
}

// RateLimitConfig provides settings for the public estimate endpoints.
type RateLimitConfig interface {
	GetPublicRateLimitPerMinute() int
	GetPublicRateLimitBurst() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                      string
	HTTPAddr                 string
	CORSAllowAll             bool
	CORSOrigins              []string
	CORSAllowCreds           bool
	ShutdownTimeout          time.Duration
	BusinessTimezone         string
	HolidaySource            string
	HolidayFile              string
	HolidayRulesFirstYear    int
	HolidayRulesLastYear     int
	PublicRateLimitPerMinute int
	PublicRateLimitBurst     int
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool           { return c.CORSAllowCreds }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }

// SchedulingConfig implementation
func (c *Config) GetBusinessTimezone() string { return c.BusinessTimezone }
func (c *Config) GetHolidaySource() string    { return c.HolidaySource }
func (c *Config) GetHolidayFile() string      { return c.HolidayFile }
func (c *Config) GetHolidayRulesYears() (int, int) {
	return c.HolidayRulesFirstYear, c.HolidayRulesLastYear
}

// RateLimitConfig implementation
func (c *Config) GetPublicRateLimitPerMinute() int { return c.PublicRateLimitPerMinute }
func (c *Config) GetPublicRateLimitBurst() int     { return c.PublicRateLimitBurst }

// IsDevelopment reports whether the app runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	thisYear := time.Now().Year()

	cfg := &Config{
		Env:                      getEnv("APP_ENV", "development"),
		HTTPAddr:                 getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:             corsAllowAll,
		CORSOrigins:              corsOrigins,
		CORSAllowCreds:           strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		ShutdownTimeout:          mustDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")),
		BusinessTimezone:         getEnv("BUSINESS_TIMEZONE", "America/New_York"),
		HolidaySource:            strings.ToLower(strings.TrimSpace(getEnv("HOLIDAY_SOURCE", HolidaySourceStatic))),
		HolidayFile:              getEnv("HOLIDAY_FILE", ""),
		HolidayRulesFirstYear:    mustInt(getEnv("HOLIDAY_RULES_FIRST_YEAR", strconv.Itoa(thisYear-1))),
		HolidayRulesLastYear:     mustInt(getEnv("HOLIDAY_RULES_LAST_YEAR", strconv.Itoa(thisYear+5))),
		PublicRateLimitPerMinute: mustInt(getEnv("PUBLIC_RATE_LIMIT_PER_MINUTE", "30")),
		PublicRateLimitBurst:     mustInt(getEnv("PUBLIC_RATE_LIMIT_BURST", "10")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if !c.CORSAllowAll && len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin unless CORS_ALLOW_ALL is true")
	}
	if _, err := time.LoadLocation(c.BusinessTimezone); err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE %q is invalid: %w", c.BusinessTimezone, err)
	}

	switch c.HolidaySource {
	case HolidaySourceStatic, HolidaySourceRules:
	case HolidaySourceFile, HolidaySourceUnion:
		if c.HolidaySource == HolidaySourceFile && c.HolidayFile == "" {
			return fmt.Errorf("HOLIDAY_FILE is required when HOLIDAY_SOURCE is %q", HolidaySourceFile)
		}
	default:
		return fmt.Errorf("HOLIDAY_SOURCE must be one of static, file, rules, union (got %q)", c.HolidaySource)
	}

	if c.HolidayRulesFirstYear <= 0 || c.HolidayRulesLastYear < c.HolidayRulesFirstYear {
		return fmt.Errorf("HOLIDAY_RULES_FIRST_YEAR/HOLIDAY_RULES_LAST_YEAR must form a valid range")
	}
	if c.PublicRateLimitPerMinute <= 0 || c.PublicRateLimitBurst <= 0 {
		return fmt.Errorf("PUBLIC_RATE_LIMIT_PER_MINUTE and PUBLIC_RATE_LIMIT_BURST must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
