package queries_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/freight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListFreightTypesQueryHandler_Handle(t *testing.T) {
	want := []freight.Descriptor{
		{Code: freight.Express, Name: "Expresso", Description: "fast"},
		{Code: freight.Standard, Name: "Padrão", Description: "regular"},
	}
	catalog := new(MockFreightCatalog)
	catalog.On("List", mock.Anything).Return(want, nil).Once()

	h, err := queries.NewListFreightTypesQueryHandler(catalog)
	require.NoError(t, err)

	got, err := h.Handle(t.Context(), queries.NewListFreightTypesQuery())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	catalog.AssertExpectations(t)
}

func TestListFreightTypesQueryHandler_Handle_CatalogError(t *testing.T) {
	catalog := new(MockFreightCatalog)
	catalog.On("List", mock.Anything).Return(nil, errors.New("catalog unavailable")).Once()

	h, err := queries.NewListFreightTypesQueryHandler(catalog)
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), queries.NewListFreightTypesQuery())

	require.EqualError(t, err, "catalog unavailable")
}

func TestListFreightTypesQueryHandler_Handle_ValidationError(t *testing.T) {
	catalog := new(MockFreightCatalog)
	h, err := queries.NewListFreightTypesQueryHandler(catalog)
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), queries.ListFreightTypesQuery{})

	require.ErrorIs(t, err, queries.ErrListFreightTypesQueryIsNotConstructed)
	catalog.AssertNotCalled(t, "List", mock.Anything)
}
