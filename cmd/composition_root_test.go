package cmd_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logistics/cmd"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) cmd.Config {
	t.Helper()

	configs, err := cmd.LoadConfig(envOf(nil))
	require.NoError(t, err)
	return configs
}

func TestCompositionRoot_CreateRouter(t *testing.T) {
	var logs bytes.Buffer
	app, err := cmd.NewCompositionRoot(defaultConfig(t), slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"rules":["weight_reduction"]`)

	e, err := app.CreateRouter(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/promotions/apply",
		strings.NewReader(`{"address":"Rua A, 123","weight":12,"freight_type":"PAD","recipient":"Maria"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"promotion_applied":true`)
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	app, err := cmd.NewCompositionRoot(defaultConfig(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	manager := app.CreateJobManager()

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestNewCompositionRoot_FreightCatalogPath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("missing file", func(t *testing.T) {
		configs := defaultConfig(t)
		configs.FreightCatalogPath = filepath.Join(t.TempDir(), "absent.yaml")

		_, err := cmd.NewCompositionRoot(configs, logger)

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("incomplete catalogue", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "freight.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
freight_types:
  - code: EXP
    name: Express
    description: Fast
`), 0o600))
		configs := defaultConfig(t)
		configs.FreightCatalogPath = path

		_, err := cmd.NewCompositionRoot(configs, logger)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
