// Package config carries environment-driven settings for the numcol command.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel  string // zerolog level name
	LogFile   string // rotating log destination; empty disables file logging
	Locale    string // default locale when -locale is not given
	HeaderRow int    // default 1-based header row
}

func Load() Config {
	headerRow, err := strconv.Atoi(getenv("NUMCOL_HEADER_ROW", "1"))
	if err != nil || headerRow < 1 {
		headerRow = 1
	}
	return Config{
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFile:   os.Getenv("LOG_FILE"),
		Locale:    os.Getenv("NUMCOL_LOCALE"),
		HeaderRow: headerRow,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
