package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeCharge(t *testing.T) {
	cases := []struct {
		price string
		want  Charge
	}{
		{price: "50.00", want: Charge{Base: 5000, Fee: 500, Gross: 5500}},
		{price: "0.01", want: Charge{Base: 1, Fee: 0, Gross: 1}},
		{price: "0.05", want: Charge{Base: 5, Fee: 1, Gross: 6}},
		{price: "19.99", want: Charge{Base: 1999, Fee: 200, Gross: 2199}},
		{price: "9999.99", want: Charge{Base: 999999, Fee: 100000, Gross: 1099999}},
		{price: "12.345", want: Charge{Base: 1235, Fee: 124, Gross: 1359}},
	}

	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			got, err := ComputeCharge(decimal.RequireFromString(tc.price))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestComputeCharge_NonPositive(t *testing.T) {
	for _, p := range []string{"0", "-1", "-0.01", "0.004", "0.0049"} {
		if _, err := ComputeCharge(decimal.RequireFromString(p)); !errors.Is(err, ErrNonPositivePrice) {
			t.Fatalf("price %s: expected ErrNonPositivePrice, got %v", p, err)
		}
	}
}

func TestMinorToMajor(t *testing.T) {
	if got := MinorToMajor(5500); !got.Equal(decimal.RequireFromString("55")) {
		t.Fatalf("expected 55, got %s", got)
	}
}

func TestComputeCharge_SmallestPayable(t *testing.T) {
	got, err := ComputeCharge(decimal.RequireFromString("0.005"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Base != 1 || got.Gross != 1 {
		t.Fatalf("expected one minor unit, got %+v", got)
	}
}
