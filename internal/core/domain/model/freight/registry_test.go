package freight_test

import (
	"testing"

	"logistics/internal/core/domain/model/freight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	registry := freight.NewRegistry()

	t.Run("should resolve every known code", func(t *testing.T) {
		for _, code := range []freight.Type{freight.Express, freight.Standard, freight.Economy} {
			c, err := registry.Resolve(code.String())

			require.NoError(t, err)
			assert.Equal(t, code, c.Type())
		}
	})

	t.Run("should match codes case-insensitively", func(t *testing.T) {
		upper, err := registry.Resolve("EXP")
		require.NoError(t, err)

		for _, code := range []string{"exp", "Exp", "eXp"} {
			c, err := registry.Resolve(code)

			require.NoError(t, err)
			assert.Equal(t, upper, c)
		}
	})

	t.Run("should reject unknown code keeping the original text", func(t *testing.T) {
		c, err := registry.Resolve("XXX")

		require.ErrorIs(t, err, freight.ErrInvalidFreight)
		assert.Nil(t, c)
		assert.Equal(t, "unknown freight type: XXX", err.Error())

		_, err = registry.Resolve("foo")
		assert.Equal(t, "unknown freight type: foo", err.Error())
	})

	t.Run("should reject empty and blank codes", func(t *testing.T) {
		for _, code := range []string{"", "   "} {
			_, err := registry.Resolve(code)

			require.ErrorIs(t, err, freight.ErrInvalidFreight)
			assert.Equal(t, "freight type must not be null or empty", err.Error())
		}
	})
}

func TestRegistry_Types(t *testing.T) {
	registry := freight.NewRegistry()

	types := registry.Types()
	assert.Equal(t, []freight.Type{freight.Express, freight.Standard, freight.Economy}, types)

	types[0] = "ZZZ"
	assert.Equal(t, freight.Express, registry.Types()[0], "callers must not be able to mutate the registry")
}

func TestParseType(t *testing.T) {
	got, err := freight.ParseType("eco")

	require.NoError(t, err)
	assert.Equal(t, freight.Economy, got)

	_, err = freight.ParseType(" ")
	require.ErrorIs(t, err, freight.ErrInvalidFreight)
}
