package bond

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FutureParams describe a cash-and-carry position in a bond futures
// contract: the deliverable bond, the financing leg, and the futures quote.
// RepoPeriodDays and RepoEnd are alternatives; leave the days at zero to
// derive the period from an explicit repo end date. FuturesQuote, when set,
// is parsed as a 32nds string and takes precedence over FuturesPrice.
// Year defaults to Year360.
type FutureParams struct {
	Bond             Params
	RepoPeriodDays   int
	RepoEnd          time.Time
	RepoRate         float64
	FuturesPrice     float64
	FuturesQuote     string
	ConversionFactor float64
	Year             MoneyMarketYear
}

// Future wraps a Bond with the repo and futures inputs needed for basis
// analytics. Forward price, invoice value, net basis, implied repo and
// forward yield are computed on first use and cached.
type Future struct {
	bond         *Bond
	repoDays     int
	repoRate     float64
	repoEnd      time.Time
	futuresPrice float64
	factor       float64
	year         MoneyMarketYear
	accruedEnd   float64

	forward   *float64
	fullValue *float64
	netBasis  *float64
	implied   *float64
	fwdYield  *float64
}

// NewFuture validates the params and builds the underlying bond.
func NewFuture(p FutureParams) (*Future, error) {
	b, err := New(p.Bond)
	if err != nil {
		return nil, err
	}

	days := p.RepoPeriodDays
	if days == 0 && !p.RepoEnd.IsZero() {
		days = int(p.RepoEnd.Sub(b.settlement).Hours() / 24)
	}
	if days <= 0 {
		return nil, fmt.Errorf("bond.NewFuture: repo period must be positive, got %d days", days)
	}

	futures := p.FuturesPrice
	if p.FuturesQuote != "" {
		parsed, err := ParsePrice(p.FuturesQuote)
		if err != nil {
			return nil, fmt.Errorf("bond.NewFuture: %w", err)
		}
		futures = parsed
	}
	if futures <= 0 {
		return nil, fmt.Errorf("bond.NewFuture: futures price must be positive, got %v", futures)
	}
	if p.ConversionFactor <= 0 {
		return nil, fmt.Errorf("bond.NewFuture: ConversionFactor must be positive, got %v", p.ConversionFactor)
	}

	year := p.Year
	if year == 0 {
		year = Year360
	}
	if !year.valid() {
		return nil, fmt.Errorf("bond.NewFuture: Year must be 360 or 365, got %d", year)
	}

	repoEnd := b.settlement.AddDate(0, 0, days)
	if !repoEnd.Before(b.maturity) {
		return nil, fmt.Errorf("bond.NewFuture: repo end %s must precede maturity %s",
			repoEnd.Format("2006-01-02"), b.maturity.Format("2006-01-02"))
	}

	// Accrued at delivery, prorated on the settlement coupon window.
	accruedEnd, err := AccruedInterest(b.couppcd, b.coupncd, repoEnd, b.couponRate, 1, b.frequency, b.basis)
	if err != nil {
		return nil, fmt.Errorf("bond.NewFuture: %w", err)
	}

	return &Future{
		bond:         b,
		repoDays:     days,
		repoRate:     p.RepoRate,
		repoEnd:      repoEnd,
		futuresPrice: futures,
		factor:       p.ConversionFactor,
		year:         year,
		accruedEnd:   accruedEnd,
	}, nil
}

// Bond returns the deliverable bond.
func (f *Future) Bond() *Bond { return f.bond }

// RepoEndDate returns settlement plus the repo period in calendar days.
func (f *Future) RepoEndDate() time.Time { return f.repoEnd }

// ConversionFactor returns the exchange conversion factor for the
// deliverable.
func (f *Future) ConversionFactor() float64 { return f.factor }

// AccruedAtDelivery returns the accrued interest at the repo end date in
// percent of par.
func (f *Future) AccruedAtDelivery() float64 { return f.accruedEnd }

// ForwardPrice carries the dirty price to the repo end date at the repo rate
// and returns it in percent of par.
func (f *Future) ForwardPrice() float64 {
	if f.forward != nil {
		return *f.forward
	}
	growth := 1 + f.repoRate/100*float64(f.repoDays)/float64(f.year)
	fwd := f.bond.DirtyPrice() / 100 * growth * 100
	f.forward = &fwd
	return fwd
}

// FullFutureValue returns the invoice price at delivery in percent of par:
// futures price times conversion factor plus accrued at the repo end date.
func (f *Future) FullFutureValue() float64 {
	if f.fullValue != nil {
		return *f.fullValue
	}
	full := f.futuresPrice*f.factor + f.accruedEnd
	f.fullValue = &full
	return full
}

// NetBasis returns forward price minus invoice price, quoted in 32nds.
func (f *Future) NetBasis() float64 {
	if f.netBasis != nil {
		return *f.netBasis
	}
	nb := (f.ForwardPrice() - f.FullFutureValue()) * 32
	f.netBasis = &nb
	return nb
}

// ImpliedRepoRate returns the financing rate (percent) at which carrying the
// bond to delivery exactly earns the invoice price.
func (f *Future) ImpliedRepoRate() float64 {
	if f.implied != nil {
		return *f.implied
	}
	implied := (f.FullFutureValue()/f.bond.DirtyPrice() - 1) *
		float64(f.year) / float64(f.repoDays) * 100
	f.implied = &implied
	return implied
}

// ForwardYield solves the yield at delivery implied by the invoice price,
// treating the full future value as the dirty price for settlement at the
// repo end date.
func (f *Future) ForwardYield() (float64, error) {
	if f.fwdYield != nil {
		return *f.fwdYield, nil
	}
	y, err := solveYield(f.FullFutureValue(), f.repoEnd, f.bond.maturity,
		f.bond.couponRate, f.bond.redemption, f.bond.frequency)
	if err != nil {
		return 0, err
	}
	f.fwdYield = &y
	return y, nil
}

// InvoiceAmount scales the invoice price to a face value, cent-rounded.
func (f *Future) InvoiceAmount(face decimal.Decimal) (decimal.Decimal, error) {
	if face.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("bond.InvoiceAmount: face value must be positive, got %s", face)
	}
	return face.Mul(decimal.NewFromFloat(f.FullFutureValue())).
		Div(decimal.NewFromInt(100)).Round(2), nil
}
