package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type LedgerStoreType string

const (
	LedgerStoreDB     LedgerStoreType = "db"
	LedgerStoreFile   LedgerStoreType = "file"
	LedgerStoreMemory LedgerStoreType = "memory"
)

// Config is the runtime configuration of the monitor, read from IOT_* env keys.
type Config struct {
	ApiBaseURL   string
	StreamURL    string
	AuthToken    string
	HttpHostPort string

	LedgerStore LedgerStoreType
	DbPath      string
	LedgerFile  string

	WarningThreshold float64
	RefreshInterval  time.Duration
	RequestTimeout   time.Duration

	DefaultRate  float64
	DefaultBurst int
}

func lookupString(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func lookupFloat(key string, fallback float64) (float64, error) {
	v := lookupString(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s, should be a float64 value: %w", key, err)
	}
	return f, nil
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := lookupString(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s, should be a duration like 30s: %w", key, err)
	}
	return d, nil
}

// LoadConfig reads the process environment. Call godotenv.Load first when a
// .env file should be honoured.
func LoadConfig() (*Config, error) {
	var err error

	cfg := &Config{
		ApiBaseURL:   lookupString(EnvKeyIOTApiBaseURL, ""),
		StreamURL:    lookupString(EnvKeyIOTStreamURL, ""),
		AuthToken:    lookupString(EnvKeyIOTAuthToken, ""),
		HttpHostPort: lookupString(EnvKeyIOTHttpHostPort, ":1080"),
		LedgerStore:  LedgerStoreType(lookupString(EnvKeyIOTLedgerStore, string(LedgerStoreDB))),
		DbPath:       lookupString(EnvKeyIOTDbPath, "monitor.db"),
		LedgerFile:   lookupString(EnvKeyIOTLedgerFile, "warnings.json"),
	}

	if cfg.ApiBaseURL == "" {
		return nil, fmt.Errorf("%s is required", EnvKeyIOTApiBaseURL)
	}
	if cfg.StreamURL == "" {
		return nil, fmt.Errorf("%s is required", EnvKeyIOTStreamURL)
	}

	switch cfg.LedgerStore {
	case LedgerStoreDB, LedgerStoreFile, LedgerStoreMemory:
	default:
		return nil, fmt.Errorf("unknown %s: %s", EnvKeyIOTLedgerStore, cfg.LedgerStore)
	}

	if cfg.WarningThreshold, err = lookupFloat(EnvKeyIOTWarningThreshold, DefaultWarningThreshold); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = lookupDuration(EnvKeyIOTRefreshInterval, time.Minute); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = lookupDuration(EnvKeyIOTRequestTimeout, 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.DefaultRate, err = lookupFloat(EnvKeyIOTDefaultRate, 10); err != nil {
		return nil, err
	}

	burst := lookupString(EnvKeyIOTDefaultBurst, "20")
	b, err := strconv.ParseInt(burst, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, should be an int value: %w", EnvKeyIOTDefaultBurst, err)
	}
	cfg.DefaultBurst = int(b)

	return cfg, nil
}
