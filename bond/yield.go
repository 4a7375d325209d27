package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/Neezydeezy/fincomepy/utils"
)

// Yield inverts DirtyPrice: it returns the flat yield (percent) at which the
// discounted coupon stream reproduces the quoted clean price plus accrued
// interest.
//
// The solve is Newton-Raphson with the analytic derivative of the discounted
// sum. Policy: price tolerance 1e-10 (percent units), at most 100 iterations,
// steps clamped to [-50, 150] percent. A converged yield outside [0, 100]
// percent fails with ErrYieldOutOfRange; anything else that stops the
// iteration fails with ErrYieldNoConvergence.
func Yield(settlement, maturity time.Time, rate, price, redemption float64, frequency int, basis utils.Basis) (float64, error) {
	pcd, ncd := couponWindow(settlement, maturity, frequency)
	accrued, err := AccruedInterest(pcd, ncd, settlement, rate, 1, frequency, basis)
	if err != nil {
		return 0, err
	}
	return solveYield(price+accrued, settlement, maturity, rate, redemption, frequency)
}

const (
	yieldTolerance = 1e-10 // on the price difference, percent units
	yieldMaxIter   = 100
	yieldSeed      = 1.0 // percent
	yieldFloor     = -50.0
	yieldCeiling   = 150.0
	yieldMin       = 0.0
	yieldMax       = 100.0
)

// solveYield finds y (percent) such that the discounted stream prices at
// target (a dirty price in percent).
func solveYield(target float64, settlement, maturity time.Time, rate, redemption float64, frequency int) (float64, error) {
	periods, flows := pricingTerms(settlement, maturity, rate, redemption, frequency)

	y := yieldSeed
	for iter := 0; iter < yieldMaxIter; iter++ {
		price, deriv := priceAndDeriv(y, frequency, periods, flows)
		f := price - target

		if math.Abs(f) < yieldTolerance {
			if y < yieldMin || y > yieldMax {
				return 0, fmt.Errorf("Yield: %w: y=%.6f", ErrYieldOutOfRange, y)
			}
			return y, nil
		}
		if math.Abs(deriv) < 1e-15 {
			return 0, fmt.Errorf("Yield: %w: derivative vanished at iter %d (y=%.6f)", ErrYieldNoConvergence, iter, y)
		}

		y = clamp(y-f/deriv, yieldFloor, yieldCeiling)
	}

	return 0, fmt.Errorf("Yield: %w: after %d iterations", ErrYieldNoConvergence, yieldMaxIter)
}

// priceAndDeriv returns the dirty price (percent) and its derivative with
// respect to the yield in percent.
func priceAndDeriv(yld float64, frequency int, periods, flows []float64) (float64, float64) {
	base := 1 + yld/100/float64(frequency)

	var price, deriv float64
	for i, p := range periods {
		price += flows[i] * math.Pow(base, -p)
		deriv += flows[i] * -p * math.Pow(base, -p-1) / (100 * float64(frequency))
	}
	return price * 100, deriv * 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
