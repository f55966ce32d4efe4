package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrListFreightTypesQueryIsNotConstructed = errors.New(
	"ListFreightTypesQuery must be created via NewListFreightTypesQuery constructor",
)

// ListFreightTypesQuery is a parameterless query for the freight type catalogue.
type ListFreightTypesQuery struct {
	guard guard.ConstructorGuard
}

func NewListFreightTypesQuery() ListFreightTypesQuery {
	return ListFreightTypesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListFreightTypesQuery) Validate() error {
	return q.guard.Validate(ErrListFreightTypesQueryIsNotConstructed)
}
