package config

import (
	"os"
	"strconv"
	"time"

	"github.com/driversed/driversed-api/internal/domain/certificate"
)

// Config holds the application-level settings. Issuance defaults and
// dashboard horizons live here rather than as package globals so they can
// be varied per environment and in tests.
type Config struct {
	Port string

	// Issuance defaults
	DefaultInstructor      string
	CertificateNumPrefix   string
	DefaultCertificateType string

	// Dashboard horizons
	ExpiryWindowDays int
	TrailingMonths   int
	RecentCount      int
}

// Load reads the configuration from environment variables, falling back to
// the defaults of the original deployment.
func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DefaultInstructor:      getEnv("DEFAULT_INSTRUCTOR", "Rihaad"),
		CertificateNumPrefix:   getEnv("CERTIFICATE_NUMBER_PREFIX", "DRA"),
		DefaultCertificateType: getEnv("DEFAULT_CERTIFICATE_TYPE", "Driver Risk Assessment"),
		ExpiryWindowDays:       getEnvInt("EXPIRY_WINDOW_DAYS", 30),
		TrailingMonths:         getEnvInt("STATS_TRAILING_MONTHS", 12),
		RecentCount:            getEnvInt("STATS_RECENT_COUNT", 5),
	}
}

// Defaults returns the issuance defaults applied on certificate creation
func (c *Config) Defaults() certificate.Defaults {
	return certificate.Defaults{
		Instructor:      c.DefaultInstructor,
		NumberPrefix:    c.CertificateNumPrefix,
		CertificateType: c.DefaultCertificateType,
	}
}

// StatsOptions returns the aggregation horizons for the dashboard
func (c *Config) StatsOptions() certificate.StatsOptions {
	return certificate.StatsOptions{
		ExpiryWindow:   time.Duration(c.ExpiryWindowDays) * 24 * time.Hour,
		TrailingMonths: c.TrailingMonths,
		RecentCount:    c.RecentCount,
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt returns an integer environment variable or a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
