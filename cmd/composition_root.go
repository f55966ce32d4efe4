package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/catalog"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/promotion"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"
	"logistics/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
)

type CompositionRoot struct {
	configs      Config
	logger       *slog.Logger
	registry     *freight.Registry
	catalog      *catalog.YAMLCatalog
	labels       *services.LabelService
	pipeline     *promotion.Pipeline
	promRegistry *prometheus.Registry
	metrics      *metrics.Metrics
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := freight.NewRegistry()

	document := catalog.DefaultDocument()
	if configs.FreightCatalogPath != "" {
		data, err := os.ReadFile(configs.FreightCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("read freight catalog: %w", err)
		}
		document = data
	}
	freightCatalog, err := catalog.NewYAMLCatalog(document, registry.Types())
	if err != nil {
		return nil, fmt.Errorf("load freight catalog: %w", err)
	}

	labels, err := services.NewLabelService(registry)
	if err != nil {
		return nil, err
	}

	pipeline := promotion.NewPipeline(promotion.NewWeightReduction())
	logger.Info("Promotion pipeline configured", "rules", pipeline.RuleNames())

	promRegistry := prometheus.NewRegistry()
	if err := promRegistry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := promRegistry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	m, err := metrics.New(promRegistry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:      configs,
		logger:       logger,
		registry:     registry,
		catalog:      freightCatalog,
		labels:       labels,
		pipeline:     pipeline,
		promRegistry: promRegistry,
		metrics:      m,
	}, nil
}

func (c *CompositionRoot) CreateCalculateFreightQueryHandler() (queries.CalculateFreightQueryHandler, error) {
	return queries.NewCalculateFreightQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGenerateLabelQueryHandler() (queries.GenerateLabelQueryHandler, error) {
	return queries.NewGenerateLabelQueryHandler(c.labels)
}

func (c *CompositionRoot) CreateApplyPromotionsQueryHandler() (queries.ApplyPromotionsQueryHandler, error) {
	return queries.NewApplyPromotionsQueryHandler(c.registry, c.pipeline)
}

func (c *CompositionRoot) CreateListFreightTypesQueryHandler() (queries.ListFreightTypesQueryHandler, error) {
	return queries.NewListFreightTypesQueryHandler(c.catalog)
}

// CreateRouter wires the HTTP adapter. Tracing uses the global OpenTelemetry
// provider and propagator, so tracing.Init must run first.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	var (
		handlers httpin.Handlers
		err      error
	)
	if handlers.CalculateFreight, err = c.CreateCalculateFreightQueryHandler(); err != nil {
		return nil, err
	}
	if handlers.GenerateLabel, err = c.CreateGenerateLabelQueryHandler(); err != nil {
		return nil, err
	}
	if handlers.ApplyPromotions, err = c.CreateApplyPromotionsQueryHandler(); err != nil {
		return nil, err
	}
	if handlers.ListFreightTypes, err = c.CreateListFreightTypesQueryHandler(); err != nil {
		return nil, err
	}

	server, err := httpin.NewServer(handlers, c.metrics, c.logger)
	if err != nil {
		return nil, err
	}

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:         c.logger,
		Metrics:        c.metrics,
		Gatherer:       c.promRegistry,
		TracerProvider: otel.GetTracerProvider(),
		Propagator:     otel.GetTextMapPropagator(),
		OpenAPI:        doc,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.promRegistry, c.configs.StatsSchedule, c.logger)
}
