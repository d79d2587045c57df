package entities

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// Prices are generated as whole cents so every case is an exact decimal.
func TestComputeCharge_NoCentDrift(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("fee and gross follow the rounding rule exactly", prop.ForAll(
		func(cents int64) bool {
			price := decimal.New(cents, -2)
			charge, err := ComputeCharge(price)
			if err != nil {
				return false
			}
			wantBase := int64(math.Round(float64(cents)))
			wantFee := int64(math.Round(float64(wantBase) / 10))
			return charge.Base == wantBase &&
				charge.Fee == wantFee &&
				charge.Gross == wantBase+wantFee
		},
		gen.Int64Range(1, 999999),
	))

	properties.Property("gross converts back to price plus fee", prop.ForAll(
		func(cents int64) bool {
			price := decimal.New(cents, -2)
			charge, err := ComputeCharge(price)
			if err != nil {
				return false
			}
			return MinorToMajor(charge.Gross).Equal(price.Add(MinorToMajor(charge.Fee)))
		},
		gen.Int64Range(1, 999999),
	))

	properties.TestingRun(t)
}
