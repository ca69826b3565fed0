package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvDefaults are option defaults taken from XLTOOLS_* environment
// variables, optionally loaded from a .env file in the working directory.
type EnvDefaults struct {
	DestMatchColumn   string
	SourceMatchColumn string
	DestDataColumn    string
	SourceDataColumn  string
	Threshold         int
	LogLevel          string
}

// LoadEnv reads environment defaults. A missing .env file is not an error;
// the variables may come from the process environment directly.
func LoadEnv() *EnvDefaults {
	_ = godotenv.Load()

	return &EnvDefaults{
		DestMatchColumn:   getEnvString("XLTOOLS_DEST_MATCH", DefaultDestMatchColumn),
		SourceMatchColumn: getEnvString("XLTOOLS_SOURCE_MATCH", DefaultSourceMatchColumn),
		DestDataColumn:    getEnvString("XLTOOLS_DEST_COLUMN", DefaultDestDataColumn),
		SourceDataColumn:  getEnvString("XLTOOLS_SOURCE_COLUMN", DefaultSourceDataColumn),
		Threshold:         getEnvInt("XLTOOLS_THRESHOLD", DefaultThreshold),
		LogLevel:          getEnvString("XLTOOLS_LOG_LEVEL", "info"),
	}
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
