package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/coursecatalog/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIURL        = "CATALOG_API_URL"
	EnvDatabaseDSN   = "CATALOG_DB"
	EnvDataDir       = "CATALOG_DATA_DIR"
	EnvListLimit     = "CATALOG_LIST_LIMIT"
	EnvLogLevel      = "CATALOG_LOG_LEVEL"
	EnvRejectExpired = "CATALOG_REJECT_EXPIRED_SESSION"
)

// parseEnv loads a dotenv file into the process environment and overlays
// the CATALOG_* variables onto cfg. The file comes from -e/-env; without the
// flag ./.env is used when it exists. Variables already set in the
// environment are not overridden by the file.
func parseEnv(cfg *Config) error {
	if err := loadDotenv(flagx.EnvFileFlag()); err != nil {
		return err
	}

	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok && v != "" {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvListLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvListLimit, err)
		}
		cfg.CourseListLimit = n
	}
	if v, ok := os.LookupEnv(EnvRejectExpired); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRejectExpired, err)
		}
		cfg.RejectExpiredSession = b
	}
	return nil
}

func loadDotenv(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
