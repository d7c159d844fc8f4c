package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the warehouse loader.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	// DBURL points at the warehouse. Empty selects the in-memory store, which
	// exists for demos and local runs without PostgreSQL.
	DBURL string

	// CSVDir, when set, is ingested into staging storage before the load run.
	CSVDir          string
	IngestWorkers   int
	IngestChunkSize int

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	serviceName := getEnv("SERVICE_NAME", "sports-warehouse-loader")
	serviceVersion := getEnv("SERVICE_VERSION", "dev")

	ingestWorkers, err := getEnvAsInt("INGEST_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_WORKERS: %w", err)
	}
	if ingestWorkers <= 0 {
		return Config{}, fmt.Errorf("INGEST_WORKERS must be greater than zero")
	}
	ingestChunkSize, err := getEnvAsInt("INGEST_CHUNK_SIZE", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse INGEST_CHUNK_SIZE: %w", err)
	}
	if ingestChunkSize <= 0 {
		return Config{}, fmt.Errorf("INGEST_CHUNK_SIZE must be greater than zero")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	return Config{
		AppEnv:                 appEnv,
		ServiceName:            serviceName,
		ServiceVersion:         serviceVersion,
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		CSVDir:                 strings.TrimSpace(getEnv("CSV_DIR", "")),
		IngestWorkers:          ingestWorkers,
		IngestChunkSize:        ingestChunkSize,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServer,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:     getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		LogLevel:               parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}
