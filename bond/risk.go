package bond

import "math"

// defaultYieldBumpPerc is the symmetric bump used by ModDuration: one basis
// point, expressed in percent.
const defaultYieldBumpPerc = 0.01

// MacDuration returns the Macaulay duration in years: the present-value
// weighted average period of the cash flows, scaled from coupon periods to
// years by the payment frequency.
func (b *Bond) MacDuration() (float64, error) {
	if b.macDur != nil {
		return *b.macDur, nil
	}
	periods, flows, factors, err := b.intermediates()
	if err != nil {
		return 0, err
	}

	var weighted float64
	for i := range periods {
		weighted += flows[i] * factors[i] * periods[i]
	}
	mac := weighted / (b.dirty / 100) / float64(b.frequency)
	b.macDur = &mac
	return mac, nil
}

// ModDuration returns the modified duration from a symmetric one basis point
// bump: the up and down relative price moves are averaged and divided by the
// bump in regular units. A finite difference sidesteps a closed-form
// derivative per basis.
func (b *Bond) ModDuration() (float64, error) {
	if b.modDur != nil {
		return *b.modDur, nil
	}
	y, err := b.Yield()
	if err != nil {
		return 0, err
	}

	up := DirtyPrice(b.settlement, b.maturity, b.couponRate, y+defaultYieldBumpPerc, b.redemption, b.frequency, b.basis)
	down := DirtyPrice(b.settlement, b.maturity, b.couponRate, y-defaultYieldBumpPerc, b.redemption, b.frequency, b.basis)

	relUp := math.Abs(up/b.dirty - 1)
	relDown := math.Abs(down/b.dirty - 1)
	mod := (relUp + relDown) / 2 / (defaultYieldBumpPerc * 0.01)
	b.modDur = &mod
	return mod, nil
}

// DV01 returns modified duration scaled by the regular dirty price: the
// first-order price sensitivity per unit yield change.
func (b *Bond) DV01() (float64, error) {
	if b.dv01 != nil {
		return *b.dv01, nil
	}
	mod, err := b.ModDuration()
	if err != nil {
		return 0, err
	}
	dv01 := mod * (b.dirty / 100)
	b.dv01 = &dv01
	return dv01, nil
}

// Convexity returns the second-order sensitivity term used by PriceChange.
func (b *Bond) Convexity() (float64, error) {
	if b.convex != nil {
		return *b.convex, nil
	}
	periods, flows, factors, err := b.intermediates()
	if err != nil {
		return 0, err
	}
	y, err := b.Yield()
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range periods {
		pv := flows[i] * factors[i]
		sum += pv*periods[i] + pv*periods[i]*periods[i]
	}
	base := 1 + y/100/float64(b.frequency)
	convex := sum / (b.dirty / 100) / (4 * base * base)
	b.convex = &convex
	return convex, nil
}

// PriceChange estimates the dirty price move in percent of par for a yield
// shift given in percent, from the second-order Taylor expansion around the
// bond's own yield.
func (b *Bond) PriceChange(yldChangePerc float64) (float64, error) {
	dv01, err := b.DV01()
	if err != nil {
		return 0, err
	}
	convex, err := b.Convexity()
	if err != nil {
		return 0, err
	}

	dy := yldChangePerc * 0.01
	change := -dv01*dy + (b.dirty/100)*convex/2*dy*dy
	return change * 100, nil
}
