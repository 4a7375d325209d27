package cbot

import "strings"

// ConversionFactorFeed supplies exchange conversion factors for deliverable
// issues, keyed by contract symbol and CUSIP.
type ConversionFactorFeed interface {
	Factor(symbol, cusip string) (float64, bool)
}

// MapConversionFactorFeed is a static map-backed implementation for
// development/testing.
type MapConversionFactorFeed struct {
	factors map[string]float64
}

func NewMapConversionFactorFeed(factors map[string]float64) *MapConversionFactorFeed {
	m := make(map[string]float64, len(factors))
	for key, factor := range factors {
		m[strings.ToUpper(key)] = factor
	}
	return &MapConversionFactorFeed{factors: m}
}

func (m *MapConversionFactorFeed) Factor(symbol, cusip string) (float64, bool) {
	val, ok := m.factors[strings.ToUpper(symbol)+"|"+strings.ToUpper(cusip)]
	return val, ok
}

// sampleFactors is a September 2020 ten-year delivery cycle sample.
var sampleFactors = map[string]float64{
	"TY|912828ZQ6": 0.7164, // 0.625% of 2030-05-15
	"TY|912828YB0": 0.7017, // 1.625% of 2029-08-15
	"TY|912828YS3": 0.7057, // 1.75% of 2029-11-15
}

// DefaultFactorFeed builds a map-backed feed using the bundled sample
// factors.
func DefaultFactorFeed() ConversionFactorFeed {
	return NewMapConversionFactorFeed(sampleFactors)
}
