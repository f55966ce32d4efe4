package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"logistics/cmd"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		configs, err := cmd.LoadConfig(envOf(nil))

		require.NoError(t, err)
		assert.Equal(t, cmd.Config{
			HTTPPort:        "8080",
			LogLevel:        slog.LevelInfo,
			LogFormat:       cmd.LogFormatJSON,
			OTelServiceName: "logistics",
			StatsSchedule:   "0 * * * * *",
			ShutdownTimeout: 10 * time.Second,
		}, configs)
	})

	t.Run("overrides", func(t *testing.T) {
		configs, err := cmd.LoadConfig(envOf(map[string]string{
			"HTTP_PORT":            "9090",
			"LOG_LEVEL":            "debug",
			"LOG_FORMAT":           "TEXT",
			"OTEL_ENABLED":         "true",
			"OTEL_SERVICE_NAME":    "freight",
			"STATS_SCHEDULE":       "*/5 * * * * *",
			"FREIGHT_CATALOG_PATH": "/etc/logistics/freight.yaml",
			"SHUTDOWN_TIMEOUT":     "3s",
		}))

		require.NoError(t, err)
		assert.Equal(t, "9090", configs.HTTPPort)
		assert.Equal(t, slog.LevelDebug, configs.LogLevel)
		assert.Equal(t, cmd.LogFormatText, configs.LogFormat)
		assert.True(t, configs.OTelEnabled)
		assert.Equal(t, "freight", configs.OTelServiceName)
		assert.Equal(t, "*/5 * * * * *", configs.StatsSchedule)
		assert.Equal(t, "/etc/logistics/freight.yaml", configs.FreightCatalogPath)
		assert.Equal(t, 3*time.Second, configs.ShutdownTimeout)
	})

	t.Run("reports every invalid value", func(t *testing.T) {
		_, err := cmd.LoadConfig(envOf(map[string]string{
			"LOG_LEVEL":        "loud",
			"LOG_FORMAT":       "xml",
			"OTEL_ENABLED":     "maybe",
			"SHUTDOWN_TIMEOUT": "-1s",
		}))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, name := range []string{"LOG_LEVEL", "LOG_FORMAT", "OTEL_ENABLED", "SHUTDOWN_TIMEOUT"} {
			assert.ErrorContains(t, err, name)
		}
	})
}
