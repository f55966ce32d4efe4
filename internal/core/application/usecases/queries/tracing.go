package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "logistics/internal/core/application/usecases/queries"

func startSpan(ctx context.Context, name string, d *delivery.Delivery) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name)
	if d != nil {
		span.SetAttributes(
			attribute.String("delivery.freight_type", d.FreightType()),
			attribute.Float64("delivery.weight", d.Weight()),
		)
	}
	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
