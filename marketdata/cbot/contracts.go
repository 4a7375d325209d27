// Package cbot describes the CBOT US Treasury futures complex: contract
// economics and conversion factors for the deliverable baskets.
package cbot

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ContractSpec is the economics of one treasury futures contract.
// MinTick32nds is the minimum price increment in 32nds of a point;
// RemainingTermYears bounds the remaining term a note or bond must have at
// delivery to enter the basket.
type ContractSpec struct {
	Symbol             string
	Name               string
	FaceValue          decimal.Decimal
	MinTick32nds       float64
	RemainingTermYears [2]float64
}

var contracts = map[string]ContractSpec{
	"TU": {
		Symbol:             "TU",
		Name:               "2-Year T-Note",
		FaceValue:          decimal.NewFromInt(200_000),
		MinTick32nds:       0.25,
		RemainingTermYears: [2]float64{1.75, 2.0},
	},
	"FV": {
		Symbol:             "FV",
		Name:               "5-Year T-Note",
		FaceValue:          decimal.NewFromInt(100_000),
		MinTick32nds:       0.25,
		RemainingTermYears: [2]float64{4.1667, 5.25},
	},
	"TY": {
		Symbol:             "TY",
		Name:               "10-Year T-Note",
		FaceValue:          decimal.NewFromInt(100_000),
		MinTick32nds:       0.5,
		RemainingTermYears: [2]float64{6.5, 10.0},
	},
	"UXY": {
		Symbol:             "UXY",
		Name:               "Ultra 10-Year T-Note",
		FaceValue:          decimal.NewFromInt(100_000),
		MinTick32nds:       0.5,
		RemainingTermYears: [2]float64{9.4167, 10.0},
	},
	"US": {
		Symbol:             "US",
		Name:               "T-Bond",
		FaceValue:          decimal.NewFromInt(100_000),
		MinTick32nds:       1.0,
		RemainingTermYears: [2]float64{15.0, 25.0},
	},
	"UB": {
		Symbol:             "UB",
		Name:               "Ultra T-Bond",
		FaceValue:          decimal.NewFromInt(100_000),
		MinTick32nds:       1.0,
		RemainingTermYears: [2]float64{25.0, 30.0},
	},
}

// Lookup finds a contract by symbol, case-insensitively.
func Lookup(symbol string) (ContractSpec, bool) {
	spec, ok := contracts[strings.ToUpper(strings.TrimSpace(symbol))]
	return spec, ok
}

// Symbols returns the known contract symbols in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(contracts))
	for sym := range contracts {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// TickValue returns the currency value of one minimum tick per contract.
func (s ContractSpec) TickValue() decimal.Decimal {
	return s.FaceValue.Mul(decimal.NewFromFloat(s.MinTick32nds)).
		Div(decimal.NewFromInt(3200))
}

// BasisValue converts a net basis in 32nds into currency per contract,
// cent-rounded.
func (s ContractSpec) BasisValue(netBasis32nds float64) decimal.Decimal {
	return s.FaceValue.Mul(decimal.NewFromFloat(netBasis32nds)).
		Div(decimal.NewFromInt(3200)).Round(2)
}
