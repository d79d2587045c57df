package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNonPositivePrice is returned when a mission price is below one minor unit.
var ErrNonPositivePrice = errors.New("price must be strictly positive")

// PlatformFeeRate is the marketplace commission withheld from the professional.
var PlatformFeeRate = decimal.RequireFromString("0.10")

var minorUnitsPerMajor = decimal.NewFromInt(100)

// Charge is the breakdown of one checkout in minor currency units.
//
//   - Base: the professional's price, round(price * 100)
//   - Fee: round(Base * PlatformFeeRate)
//   - Gross: Base + Fee, what the client pays
type Charge struct {
	Base  int64 `json:"base"`
	Fee   int64 `json:"fee"`
	Gross int64 `json:"gross"`
}

// ComputeCharge derives the charge for a price given in the major unit.
// All arithmetic happens on decimals; rounding is half away from zero.
func ComputeCharge(price decimal.Decimal) (Charge, error) {
	if !price.IsPositive() {
		return Charge{}, ErrNonPositivePrice
	}
	base := price.Mul(minorUnitsPerMajor).Round(0)
	if !base.IsPositive() {
		return Charge{}, ErrNonPositivePrice
	}
	fee := base.Mul(PlatformFeeRate).Round(0)
	return Charge{
		Base:  base.IntPart(),
		Fee:   fee.IntPart(),
		Gross: base.Add(fee).IntPart(),
	}, nil
}

// MinorToMajor converts a minor-unit amount back to the major unit.
func MinorToMajor(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(minorUnitsPerMajor)
}
