package bond

import (
	"fmt"
	"time"

	"github.com/Neezydeezy/fincomepy/utils"
)

// Params are the market inputs a Bond is built from. Rates and prices are in
// percent of par. Redemption defaults to 100 when left zero. Quote, when
// set, is parsed as a 32nds string and takes precedence over CleanPrice.
// Yield, when set, seeds the yield cache instead of solving from price.
type Params struct {
	Settlement time.Time
	Maturity   time.Time
	CouponRate float64
	CleanPrice float64
	Quote      string
	Frequency  int
	Basis      utils.Basis
	Redemption float64
	Yield      *float64
}

// Bond is an immutable fixed-coupon bond observed at a settlement date.
// The coupon window, accrued interest and dirty price are derived at
// construction; yield and the risk metrics are solved on first use and
// cached. A Bond is not safe for concurrent use: the caches are written
// without locking.
type Bond struct {
	settlement time.Time
	maturity   time.Time
	couponRate float64
	cleanPrice float64
	redemption float64
	frequency  int
	basis      utils.Basis

	couppcd time.Time
	coupncd time.Time
	accrued float64
	dirty   float64

	yld    *float64
	macDur *float64
	modDur *float64
	dv01   *float64
	convex *float64
}

// New validates the params, derives the coupon window and accrued interest,
// and returns the bond ready for analytics.
func New(p Params) (*Bond, error) {
	if p.Settlement.IsZero() {
		return nil, fmt.Errorf("bond.New: Settlement is required")
	}
	if p.Maturity.IsZero() {
		return nil, fmt.Errorf("bond.New: Maturity is required")
	}
	if !p.Settlement.Before(p.Maturity) {
		return nil, fmt.Errorf("bond.New: Settlement %s must precede Maturity %s",
			p.Settlement.Format("2006-01-02"), p.Maturity.Format("2006-01-02"))
	}
	switch p.Frequency {
	case 1, 2, 4, 12:
	default:
		return nil, fmt.Errorf("bond.New: Frequency must be 1, 2, 4 or 12, got %d", p.Frequency)
	}
	if p.Basis < utils.Thirty360US || p.Basis > utils.ThirtyE360 {
		return nil, fmt.Errorf("bond.New: Basis must be 0 through 4, got %d", p.Basis)
	}
	if p.CouponRate < 0 {
		return nil, fmt.Errorf("bond.New: CouponRate must not be negative, got %v", p.CouponRate)
	}

	clean := p.CleanPrice
	if p.Quote != "" {
		parsed, err := ParsePrice(p.Quote)
		if err != nil {
			return nil, fmt.Errorf("bond.New: %w", err)
		}
		clean = parsed
	}
	if clean <= 0 {
		return nil, fmt.Errorf("bond.New: clean price must be positive, got %v", clean)
	}

	redemption := p.Redemption
	if redemption == 0 {
		redemption = 100
	}
	if redemption < 0 {
		return nil, fmt.Errorf("bond.New: Redemption must not be negative, got %v", redemption)
	}

	b := &Bond{
		settlement: p.Settlement,
		maturity:   p.Maturity,
		couponRate: p.CouponRate,
		cleanPrice: clean,
		redemption: redemption,
		frequency:  p.Frequency,
		basis:      p.Basis,
	}
	b.couppcd, b.coupncd = couponWindow(b.settlement, b.maturity, b.frequency)

	accrued, err := AccruedInterest(b.couppcd, b.coupncd, b.settlement, b.couponRate, 1, b.frequency, b.basis)
	if err != nil {
		return nil, fmt.Errorf("bond.New: %w", err)
	}
	b.accrued = accrued
	b.dirty = clean + accrued

	if p.Yield != nil {
		if *p.Yield < yieldMin || *p.Yield > yieldMax {
			return nil, fmt.Errorf("bond.New: %w: y=%.6f", ErrYieldOutOfRange, *p.Yield)
		}
		y := *p.Yield
		b.yld = &y
	}
	return b, nil
}

func (b *Bond) Settlement() time.Time { return b.settlement }
func (b *Bond) Maturity() time.Time   { return b.maturity }
func (b *Bond) CouponRate() float64   { return b.couponRate }
func (b *Bond) Frequency() int        { return b.frequency }
func (b *Bond) Basis() utils.Basis    { return b.basis }
func (b *Bond) Redemption() float64   { return b.redemption }

// PrevCoupon returns the coupon date on or before settlement.
func (b *Bond) PrevCoupon() time.Time { return b.couppcd }

// NextCoupon returns the first coupon date after settlement.
func (b *Bond) NextCoupon() time.Time { return b.coupncd }

// CleanPrice returns the quoted clean price in percent of par.
func (b *Bond) CleanPrice() float64 { return b.cleanPrice }

// AccruedInterest returns the accrued coupon at settlement in percent of par.
func (b *Bond) AccruedInterest() float64 { return b.accrued }

// DirtyPrice returns clean price plus accrued interest in percent of par.
func (b *Bond) DirtyPrice() float64 { return b.dirty }

// Yield solves the dirty price for the flat yield in percent, caching the
// result. Every later metric that needs a yield reuses this cached value.
func (b *Bond) Yield() (float64, error) {
	if b.yld != nil {
		return *b.yld, nil
	}
	y, err := solveYield(b.dirty, b.settlement, b.maturity, b.couponRate, b.redemption, b.frequency)
	if err != nil {
		return 0, err
	}
	b.yld = &y
	return y, nil
}

// intermediates exposes the discounting arrays behind DirtyPrice at the
// bond's own yield: period exponents, regular cash flows and discount
// factors. Solving the yield is the only step that can fail.
func (b *Bond) intermediates() (periods, flows, factors []float64, err error) {
	y, err := b.Yield()
	if err != nil {
		return nil, nil, nil, err
	}
	periods, flows = pricingTerms(b.settlement, b.maturity, b.couponRate, b.redemption, b.frequency)
	return periods, flows, discountFactors(y, b.frequency, periods), nil
}
