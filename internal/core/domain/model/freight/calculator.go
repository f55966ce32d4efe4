package freight

import "math"

// Calculator prices a shipment of the given weight for one freight type.
// Implementations are stateless and safe for concurrent use.
type Calculator interface {
	Type() Type
	Calculate(weight float64) (float64, error)
}

var (
	ErrExpressWeightIsNotPositive  = NewInvalidFreightError("weight for express freight must be positive")
	ErrStandardWeightIsNotPositive = NewInvalidFreightError("weight for standard freight must be positive")
	ErrEconomyWeightIsNotPositive  = NewInvalidFreightError("weight for economy freight must be positive")

	ErrExpressPriceIsOutOfRange  = NewInvalidFreightError("freight price for express freight is out of range")
	ErrStandardPriceIsOutOfRange = NewInvalidFreightError("freight price for standard freight is out of range")
	ErrEconomyPriceIsOutOfRange  = NewInvalidFreightError("freight price for economy freight is out of range")
)

// ExpressCalculator charges weight * 1.5 plus a fixed 10.
type ExpressCalculator struct{}

func (ExpressCalculator) Type() Type {
	return Express
}

func (ExpressCalculator) Calculate(weight float64) (float64, error) {
	if !isPositive(weight) {
		return 0, ErrExpressWeightIsNotPositive
	}
	return finitePrice(weight*1.5+10, ErrExpressPriceIsOutOfRange)
}

// StandardCalculator charges weight * 1.2.
type StandardCalculator struct{}

func (StandardCalculator) Type() Type {
	return Standard
}

func (StandardCalculator) Calculate(weight float64) (float64, error) {
	if !isPositive(weight) {
		return 0, ErrStandardWeightIsNotPositive
	}
	return finitePrice(weight*1.2, ErrStandardPriceIsOutOfRange)
}

// EconomyCalculator charges weight * 1.1 minus a fixed 5.
// Light parcels can therefore price below zero.
type EconomyCalculator struct{}

func (EconomyCalculator) Type() Type {
	return Economy
}

func (EconomyCalculator) Calculate(weight float64) (float64, error) {
	if !isPositive(weight) {
		return 0, ErrEconomyWeightIsNotPositive
	}
	return finitePrice(weight*1.1-5, ErrEconomyPriceIsOutOfRange)
}

// isPositive also rejects NaN, which compares false against everything.
func isPositive(weight float64) bool {
	return weight > 0 && !math.IsNaN(weight)
}

// finitePrice rejects prices that overflowed float64.
func finitePrice(price float64, outOfRange error) (float64, error) {
	if math.IsInf(price, 0) {
		return 0, outOfRange
	}
	return price, nil
}
