package queries_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculateFreightQueryHandler_NilResolver(t *testing.T) {
	_, err := queries.NewCalculateFreightQueryHandler(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCalculateFreightQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	h, err := queries.NewCalculateFreightQueryHandler(freight.NewRegistry())
	require.NoError(t, err)

	tests := []struct {
		weight      float64
		freightType string
		want        float64
	}{
		{5, "EXP", 17.5},
		{12, "PAD", 14.4},
		{10, "eco", 6},
	}

	for _, tt := range tests {
		q, err := queries.NewCalculateFreightQuery(newDelivery(t, tt.weight, tt.freightType))
		require.NoError(t, err)

		res, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.InDelta(t, tt.want, res.Price, 1e-9)
		assert.Same(t, q.Delivery(), res.Delivery)
	}
}

func TestCalculateFreightQueryHandler_Handle_UnknownFreightType(t *testing.T) {
	h, err := queries.NewCalculateFreightQueryHandler(freight.NewRegistry())
	require.NoError(t, err)
	q, err := queries.NewCalculateFreightQuery(newDelivery(t, 5, "FOO"))
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), q)

	require.ErrorIs(t, err, freight.ErrInvalidFreight)
	assert.Equal(t, "unknown freight type: FOO", err.Error())
}

func TestCalculateFreightQueryHandler_Handle_ResolverFailure(t *testing.T) {
	resolver := new(MockFreightResolver)
	resolver.On("Resolve", "PAD").Return(nil, errors.New("boom")).Once()

	h, err := queries.NewCalculateFreightQueryHandler(resolver)
	require.NoError(t, err)
	q, err := queries.NewCalculateFreightQuery(newDelivery(t, 5, "PAD"))
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), q)

	require.EqualError(t, err, "boom")
	resolver.AssertExpectations(t)
}

func TestCalculateFreightQueryHandler_Handle_ValidationError(t *testing.T) {
	resolver := new(MockFreightResolver)
	h, err := queries.NewCalculateFreightQueryHandler(resolver)
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), queries.CalculateFreightQuery{})

	require.ErrorIs(t, err, queries.ErrCalculateFreightQueryIsNotConstructed)
	resolver.AssertNotCalled(t, "Resolve")
}
