package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/freight"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFreightResolver struct{ mock.Mock }

func (m *MockFreightResolver) Resolve(code string) (freight.Calculator, error) {
	args := m.Called(code)
	c, _ := args.Get(0).(freight.Calculator)
	return c, args.Error(1)
}

type MockLabelGenerator struct{ mock.Mock }

func (m *MockLabelGenerator) GenerateLabel(d *delivery.Delivery) (string, error) {
	args := m.Called(d)
	return args.String(0), args.Error(1)
}

func (m *MockLabelGenerator) GenerateOrderSummary(d *delivery.Delivery) (string, error) {
	args := m.Called(d)
	return args.String(0), args.Error(1)
}

type MockPromotionApplier struct{ mock.Mock }

func (m *MockPromotionApplier) ApplyAll(d *delivery.Delivery) (*delivery.Delivery, error) {
	args := m.Called(d)
	promoted, _ := args.Get(0).(*delivery.Delivery)
	return promoted, args.Error(1)
}

type MockFreightCatalog struct{ mock.Mock }

func (m *MockFreightCatalog) List(ctx context.Context) ([]freight.Descriptor, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]freight.Descriptor)
	return types, args.Error(1)
}

func newDelivery(t *testing.T, weight float64, freightType string) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery("Rua A", weight, freightType, "João")
	require.NoError(t, err)
	return d
}
