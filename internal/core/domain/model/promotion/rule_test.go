package promotion_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDelivery(t *testing.T, weight float64) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery("Rua A", weight, "PAD", "João")
	require.NoError(t, err)
	return d
}

func TestWeightReduction_IsApplicable(t *testing.T) {
	rule := promotion.NewWeightReduction()

	tests := []struct {
		weight float64
		want   bool
	}{
		{5, false},
		{10, false},
		{10.01, true},
		{12, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rule.IsApplicable(newDelivery(t, tt.weight)), "weight %v", tt.weight)
	}

	t.Run("should not apply to nil delivery", func(t *testing.T) {
		assert.False(t, rule.IsApplicable(nil))
	})
}

func TestWeightReduction_Apply(t *testing.T) {
	rule := promotion.NewWeightReduction()

	t.Run("should return the same delivery at the threshold", func(t *testing.T) {
		d := newDelivery(t, 10)

		got, err := rule.Apply(d)

		require.NoError(t, err)
		assert.Same(t, d, got)
	})

	t.Run("should take one unit off just above the threshold", func(t *testing.T) {
		d := newDelivery(t, 10.01)

		got, err := rule.Apply(d)

		require.NoError(t, err)
		assert.NotSame(t, d, got)
		assert.InDelta(t, 9.01, got.Weight(), 1e-9)
		assert.InDelta(t, 10.01, d.Weight(), 1e-9)
	})

	t.Run("should keep every other field", func(t *testing.T) {
		d := newDelivery(t, 12)

		got, err := rule.Apply(d)

		require.NoError(t, err)
		assert.InDelta(t, 11, got.Weight(), 1e-9)
		assert.Equal(t, d.Address(), got.Address())
		assert.Equal(t, d.FreightType(), got.FreightType())
		assert.Equal(t, d.Recipient(), got.Recipient())
	})

	t.Run("should reject unconstructed delivery", func(t *testing.T) {
		_, err := rule.Apply(&delivery.Delivery{})

		require.ErrorIs(t, err, delivery.ErrInvalidDelivery)
	})

	assert.Equal(t, "weight_reduction", rule.Name())
}
