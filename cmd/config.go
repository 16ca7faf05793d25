package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache drivers accepted in CACHE_DRIVER.
const (
	CacheDriverMemory   = "memory"
	CacheDriverPostgres = "postgres"
)

type Config struct {
	HTTPPort            string
	LogLevel            slog.Level
	RefDataDir          string
	RefDataURL          string
	RefDataTimeout      time.Duration
	CacheDriver         string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	TotalReportSchedule string
}

// LoadConfig reads envFile (if it exists) into the environment and builds
// the configuration from environment variables, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		RefDataDir:          getEnv("REFDATA_DIR", "data"),
		RefDataURL:          strings.TrimRight(getEnv("REFDATA_URL", ""), "/"),
		CacheDriver:         strings.ToLower(getEnv("CACHE_DRIVER", CacheDriverMemory)),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBName:              getEnv("DB_NAME", "deliverydesk"),
		DBSslMode:           getEnv("DB_SSLMODE", "disable"),
		TotalReportSchedule: getEnv("TOTAL_REPORT_SCHEDULE", "0 * * * * *"),
	}

	if err := config.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	timeoutMs, err := strconv.Atoi(getEnv("REFDATA_TIMEOUT_MS", "5000"))
	if err != nil || timeoutMs <= 0 {
		return Config{}, fmt.Errorf("invalid REFDATA_TIMEOUT_MS %q", os.Getenv("REFDATA_TIMEOUT_MS"))
	}
	config.RefDataTimeout = time.Duration(timeoutMs) * time.Millisecond

	switch config.CacheDriver {
	case CacheDriverMemory, CacheDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown CACHE_DRIVER %q", config.CacheDriver)
	}

	return config, nil
}

// DSN returns the postgres connection string for the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
