package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendXLSX     Backend = "xlsx"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

type Config struct {
	Port string

	BreedsFile string
	OutputRoot string

	Backend    Backend
	LogFile    string // planilla .xlsx
	SQLitePath string
	DBDSN      string

	MaxUploadBytes int64

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env (si existe) y después las variables de entorno.
// Las variables ya definidas en el entorno no se pisan con .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		BreedsFile: getEnv("BREEDS_FILE", "breeds.txt"),
		OutputRoot: getEnv("OUTPUT_ROOT", "고객사진"),
		LogFile:    getEnv("LOG_FILE", "customer_data.xlsx"),
		SQLitePath: getEnv("SQLITE_PATH", "customer_data.db"),
		DBDSN:      strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogFormat:  os.Getenv("LOG_FORMAT"),
		AppName:    getEnv("APP_NAME", "pet-grooming-intake"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	mb, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "25"))
	if err != nil || mb <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB %q", os.Getenv("MAX_UPLOAD_MB"))
	}
	cfg.MaxUploadBytes = int64(mb) << 20

	// Si hay DB_DSN y no se eligió backend, va a Postgres.
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_BACKEND")))
	switch {
	case raw == "" && cfg.DBDSN != "":
		cfg.Backend = BackendPostgres
	case raw == "":
		cfg.Backend = BackendXLSX
	default:
		cfg.Backend = Backend(raw)
	}

	switch cfg.Backend {
	case BackendXLSX, BackendSQLite, BackendMemory:
	case BackendPostgres:
		if cfg.DBDSN == "" {
			return nil, errors.New("LOG_BACKEND=postgres requires DB_DSN")
		}
	default:
		return nil, fmt.Errorf("unknown LOG_BACKEND %q", raw)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}
