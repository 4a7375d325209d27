package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/Neezydeezy/fincomepy/utils"
)

// AccruedInterest computes coupon interest accrued from issue to settlement,
// prorated against the issue to first-interest period under the given basis.
// With par = 1 and rate in percent the result is in percent of par.
//
// Bases 2 and 3 follow the money-market shortcut: raw days over 360 or 365
// times the rate, with par and frequency playing no part.
func AccruedInterest(issue, firstInterest, settlement time.Time, rate, par float64, frequency int, basis utils.Basis) (float64, error) {
	if issue.After(firstInterest) {
		return 0, fmt.Errorf("AccruedInterest: %w: issue %s, first interest %s",
			ErrInvalidDateOrder, issue.Format("2006-01-02"), firstInterest.Format("2006-01-02"))
	}
	switch basis {
	case utils.Act360:
		return float64(utils.DayCount(issue, settlement, basis)) / 360 * rate, nil
	case utils.Act365:
		return float64(utils.DayCount(issue, settlement, basis)) / 365 * rate, nil
	}
	total := utils.DayCount(issue, firstInterest, basis)
	accrued := utils.DayCount(issue, settlement, basis)
	return rate / float64(frequency) * (float64(accrued) / float64(total)) * par, nil
}

// DirtyPrice discounts the remaining coupon stream at a flat yield and
// returns the full invoice price in percent of par. The first period is
// fractional: actual days from settlement to the next coupon over actual
// days in the current coupon period, regardless of basis. Every later
// coupon sits a whole period after the first.
func DirtyPrice(settlement, maturity time.Time, rate, yld, redemption float64, frequency int, basis utils.Basis) float64 {
	periods, flows := pricingTerms(settlement, maturity, rate, redemption, frequency)

	var price float64
	base := 1 + yld/100/float64(frequency)
	for i, p := range periods {
		price += flows[i] * math.Pow(base, -p)
	}
	return price * 100
}

// pricingTerms expands the remaining coupon stream into period exponents and
// per-period cash flows in regular (fraction of par) units. The final flow
// carries the redemption amount.
func pricingTerms(settlement, maturity time.Time, rate, redemption float64, frequency int) (periods, flows []float64) {
	pcd, ncd := couponWindow(settlement, maturity, frequency)
	interval := 12 / frequency
	nperiod := utils.MonthsBetween(pcd, maturity) / interval
	firstPeriod := utils.Days(settlement, ncd) / utils.Days(pcd, ncd)

	periods = make([]float64, nperiod)
	flows = make([]float64, nperiod)
	coupon := rate / float64(frequency) / 100
	for i := range periods {
		periods[i] = firstPeriod + float64(i)
		flows[i] = coupon
	}
	flows[nperiod-1] += redemption / 100
	return periods, flows
}

// discountFactors evaluates 1/(1+y/frequency)^p for every period exponent,
// with the yield given in percent.
func discountFactors(yld float64, frequency int, periods []float64) []float64 {
	base := 1 + yld/100/float64(frequency)
	out := make([]float64, len(periods))
	for i, p := range periods {
		out[i] = math.Pow(base, -p)
	}
	return out
}
