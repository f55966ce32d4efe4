package tracing_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"logistics/internal/pkg/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(t.Context(), tracing.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, err)
	require.NoError(t, shutdown(t.Context()))
}

func TestNewTracerProvider_ExportsSpans(t *testing.T) {
	var out bytes.Buffer
	tp, err := tracing.NewTracerProvider(t.Context(), tracing.Config{Enabled: true, ServiceName: "logistics-test", Writer: &out})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(t.Context(), "CalculateFreight")
	span.End()
	require.NoError(t, tp.Shutdown(t.Context()))

	assert.Contains(t, out.String(), "CalculateFreight")
	assert.Contains(t, out.String(), "logistics-test")
}
