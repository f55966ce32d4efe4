package cmd

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"logistics/internal/jobs"
	"logistics/internal/pkg/errs"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

type Config struct {
	HTTPPort           string
	LogLevel           slog.Level
	LogFormat          string
	OTelEnabled        bool
	OTelServiceName    string
	StatsSchedule      string
	FreightCatalogPath string
	ShutdownTimeout    time.Duration
}

// LoadConfig reads the configuration through getenv, applying defaults for
// unset variables. All invalid values are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	configs := Config{
		HTTPPort:           valueOrDefault(getenv("HTTP_PORT"), "8080"),
		LogLevel:           slog.LevelInfo,
		LogFormat:          strings.ToLower(valueOrDefault(getenv("LOG_FORMAT"), LogFormatJSON)),
		OTelServiceName:    valueOrDefault(getenv("OTEL_SERVICE_NAME"), "logistics"),
		StatsSchedule:      valueOrDefault(getenv("STATS_SCHEDULE"), jobs.DefaultStatsSchedule),
		FreightCatalogPath: getenv("FREIGHT_CATALOG_PATH"),
		ShutdownTimeout:    10 * time.Second,
	}

	var err error

	if v := getenv("LOG_LEVEL"); v != "" {
		if parseErr := configs.LogLevel.UnmarshalText([]byte(v)); parseErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", parseErr))
		}
	}

	if configs.LogFormat != LogFormatJSON && configs.LogFormat != LogFormatText {
		err = errors.Join(err, errs.NewValueIsInvalidError("LOG_FORMAT"))
	}

	if v := getenv("OTEL_ENABLED"); v != "" {
		enabled, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("OTEL_ENABLED", parseErr))
		}
		configs.OTelEnabled = enabled
	}

	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		timeout, parseErr := time.ParseDuration(v)
		switch {
		case parseErr != nil:
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("SHUTDOWN_TIMEOUT", parseErr))
		case timeout <= 0:
			err = errors.Join(err, errs.NewValueIsInvalidError("SHUTDOWN_TIMEOUT"))
		default:
			configs.ShutdownTimeout = timeout
		}
	}

	if err != nil {
		return Config{}, err
	}
	return configs, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
