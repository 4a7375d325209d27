package bond_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Neezydeezy/fincomepy/bond"
	"github.com/Neezydeezy/fincomepy/utils"
)

func ustScenario(t *testing.T) *bond.Bond {
	t.Helper()
	b, err := bond.New(bond.Params{
		Settlement: date(2020, time.July, 15),
		Maturity:   date(2030, time.May, 15),
		CouponRate: 0.625,
		Quote:      "100-0+",
		Frequency:  2,
		Basis:      utils.ActAct,
	})
	require.NoError(t, err)
	return b
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	valid := bond.Params{
		Settlement: date(2020, time.July, 15),
		Maturity:   date(2030, time.May, 15),
		CouponRate: 0.625,
		CleanPrice: 100.015625,
		Frequency:  2,
		Basis:      utils.ActAct,
	}

	cases := []struct {
		name   string
		mutate func(*bond.Params)
	}{
		{"missing settlement", func(p *bond.Params) { p.Settlement = time.Time{} }},
		{"missing maturity", func(p *bond.Params) { p.Maturity = time.Time{} }},
		{"settlement equals maturity", func(p *bond.Params) { p.Settlement = p.Maturity }},
		{"settlement after maturity", func(p *bond.Params) { p.Settlement = date(2031, time.January, 1) }},
		{"bad frequency", func(p *bond.Params) { p.Frequency = 3 }},
		{"bad basis", func(p *bond.Params) { p.Basis = 5 }},
		{"negative coupon", func(p *bond.Params) { p.CouponRate = -1 }},
		{"zero price", func(p *bond.Params) { p.CleanPrice = 0 }},
		{"negative price", func(p *bond.Params) { p.CleanPrice = -95 }},
		{"malformed quote", func(p *bond.Params) { p.Quote = "1-2-3" }},
		{"negative redemption", func(p *bond.Params) { p.Redemption = -100 }},
		{"seed yield out of range", func(p *bond.Params) {
			y := 250.0
			p.Yield = &y
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			tc.mutate(&p)
			_, err := bond.New(p)
			require.Error(t, err)
		})
	}

	t.Run("valid params pass", func(t *testing.T) {
		t.Parallel()
		_, err := bond.New(valid)
		require.NoError(t, err)
	})
}

func TestBondDerivedFields(t *testing.T) {
	t.Parallel()

	b := ustScenario(t)

	require.Equal(t, date(2020, time.May, 15), b.PrevCoupon())
	require.Equal(t, date(2020, time.November, 15), b.NextCoupon())
	require.Equal(t, 100.015625, b.CleanPrice())
	require.InDelta(t, 0.10360054, b.AccruedInterest(), 1e-8)
	require.InDelta(t, 100.11922554, b.DirtyPrice(), 1e-8)
	require.Equal(t, 100.0, b.Redemption())

	y, err := b.Yield()
	require.NoError(t, err)
	require.InDelta(t, 0.62334818, y, 1e-6)
}

func TestBondQuotePrecedence(t *testing.T) {
	t.Parallel()

	b, err := bond.New(bond.Params{
		Settlement: date(2020, time.July, 15),
		Maturity:   date(2030, time.May, 15),
		CouponRate: 0.625,
		CleanPrice: 95,
		Quote:      "99-30",
		Frequency:  2,
		Basis:      utils.ActAct,
	})
	require.NoError(t, err)
	require.Equal(t, 99.9375, b.CleanPrice())
}

func TestBondSeededYield(t *testing.T) {
	t.Parallel()

	// A supplied yield is served back verbatim, bypassing the solver.
	seed := 4.2
	b, err := bond.New(bond.Params{
		Settlement: date(2020, time.July, 15),
		Maturity:   date(2030, time.May, 15),
		CouponRate: 0.625,
		CleanPrice: 50,
		Frequency:  2,
		Basis:      utils.ActAct,
		Yield:      &seed,
	})
	require.NoError(t, err)

	y, err := b.Yield()
	require.NoError(t, err)
	require.Equal(t, seed, y)
}

func TestBondYieldCached(t *testing.T) {
	t.Parallel()

	b := ustScenario(t)
	first, err := b.Yield()
	require.NoError(t, err)
	second, err := b.Yield()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBondRiskMetrics(t *testing.T) {
	t.Parallel()

	b := ustScenario(t)

	mac, err := b.MacDuration()
	require.NoError(t, err)
	mod, err := b.ModDuration()
	require.NoError(t, err)
	dv01, err := b.DV01()
	require.NoError(t, err)
	convex, err := b.Convexity()
	require.NoError(t, err)
	y, err := b.Yield()
	require.NoError(t, err)

	// Just under ten years to maturity bounds the weighted average period.
	require.Greater(t, mac, 9.0)
	require.Less(t, mac, 10.0)

	// Modified and Macaulay duration tie together through one period of
	// compounding at the bond's own yield.
	require.InDelta(t, mac/(1+y/100/2), mod, 1e-4)

	require.InDelta(t, mod*b.DirtyPrice()/100, dv01, 1e-12)
	require.Greater(t, convex, 0.0)
}

func TestBondPriceChange(t *testing.T) {
	t.Parallel()

	b := ustScenario(t)

	zero, err := b.PriceChange(0)
	require.NoError(t, err)
	require.Zero(t, zero)

	up, err := b.PriceChange(0.10)
	require.NoError(t, err)
	down, err := b.PriceChange(-0.10)
	require.NoError(t, err)

	require.Negative(t, up)
	require.Positive(t, down)

	// Convexity makes the gain on a drop beat the loss on an equal rise.
	require.Positive(t, up+down)

	// First order dominates for a small move; the gap is the convexity term.
	dv01, err := b.DV01()
	require.NoError(t, err)
	require.InDelta(t, -dv01*0.10*0.01*100, up, 0.01)
}

func TestBondYieldErrorPropagates(t *testing.T) {
	t.Parallel()

	// Deep premium short bond solves negative, so every yield-driven
	// metric surfaces the same failure.
	b, err := bond.New(bond.Params{
		Settlement: date(2020, time.July, 15),
		Maturity:   date(2022, time.May, 15),
		CouponRate: 0.125,
		CleanPrice: 110,
		Frequency:  2,
		Basis:      utils.ActAct,
	})
	require.NoError(t, err)

	_, err = b.Yield()
	require.ErrorIs(t, err, bond.ErrYieldOutOfRange)
	_, err = b.MacDuration()
	require.ErrorIs(t, err, bond.ErrYieldOutOfRange)
	_, err = b.ModDuration()
	require.ErrorIs(t, err, bond.ErrYieldOutOfRange)
	_, err = b.DV01()
	require.ErrorIs(t, err, bond.ErrYieldOutOfRange)
	_, err = b.Convexity()
	require.ErrorIs(t, err, bond.ErrYieldOutOfRange)
	_, err = b.PriceChange(0.5)
	require.ErrorIs(t, err, bond.ErrYieldOutOfRange)
}
