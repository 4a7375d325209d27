package bond

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RepoParams describe financing a bond position: the collateral bond, the
// position face value in currency, the repo term and rate. RepoPeriodDays
// and RepoEnd are alternatives, as in FutureParams. Year defaults to
// Year360.
type RepoParams struct {
	Bond           Params
	FaceValue      decimal.Decimal
	RepoPeriodDays int
	RepoEnd        time.Time
	RepoRate       float64
	Year           MoneyMarketYear
}

// Repo is a term repo on a bond position. The start and end payments are
// currency amounts carried as decimals and rounded to the cent.
type Repo struct {
	bond *Bond
	face decimal.Decimal
	days int
	rate float64
	year MoneyMarketYear
	end  time.Time

	startExact decimal.Decimal
	start      *decimal.Decimal
	endPay     *decimal.Decimal
	breakEven  *float64
}

// NewRepo validates the params and builds the collateral bond.
func NewRepo(p RepoParams) (*Repo, error) {
	b, err := New(p.Bond)
	if err != nil {
		return nil, err
	}
	if p.FaceValue.Sign() <= 0 {
		return nil, fmt.Errorf("bond.NewRepo: FaceValue must be positive, got %s", p.FaceValue)
	}

	days := p.RepoPeriodDays
	if days == 0 && !p.RepoEnd.IsZero() {
		days = int(p.RepoEnd.Sub(b.settlement).Hours() / 24)
	}
	if days <= 0 {
		return nil, fmt.Errorf("bond.NewRepo: repo period must be positive, got %d days", days)
	}

	year := p.Year
	if year == 0 {
		year = Year360
	}
	if !year.valid() {
		return nil, fmt.Errorf("bond.NewRepo: Year must be 360 or 365, got %d", year)
	}

	r := &Repo{
		bond: b,
		face: p.FaceValue,
		days: days,
		rate: p.RepoRate,
		year: year,
		end:  b.settlement.AddDate(0, 0, days),
	}
	r.startExact = p.FaceValue.Mul(decimal.NewFromFloat(b.DirtyPrice())).
		Div(decimal.NewFromInt(100))
	return r, nil
}

// Bond returns the collateral bond.
func (r *Repo) Bond() *Bond { return r.bond }

// EndDate returns settlement plus the repo period in calendar days.
func (r *Repo) EndDate() time.Time { return r.end }

// StartPayment returns the cash lent at the repo start: the position's
// dirty value, cent-rounded.
func (r *Repo) StartPayment() decimal.Decimal {
	if r.start != nil {
		return *r.start
	}
	start := r.startExact.Round(2)
	r.start = &start
	return start
}

// EndPayment returns the cash repaid at the repo end: the start payment
// grown at the repo rate over the period on the money-market basis,
// cent-rounded.
func (r *Repo) EndPayment() decimal.Decimal {
	if r.endPay != nil {
		return *r.endPay
	}
	growth := decimal.NewFromInt(1).Add(
		decimal.NewFromFloat(r.rate).
			Div(decimal.NewFromInt(100)).
			Mul(decimal.NewFromInt(int64(r.days))).
			Div(decimal.NewFromInt(int64(r.year))))
	end := r.startExact.Mul(growth).Round(2)
	r.endPay = &end
	return end
}

// BreakEvenRate returns the repo rate (percent) at which the financing cost
// over the period equals the interest the bond earns at its own yield on
// the same money-market basis, so the carry nets to zero.
func (r *Repo) BreakEvenRate() (float64, error) {
	if r.breakEven != nil {
		return *r.breakEven, nil
	}
	y, err := r.bond.Yield()
	if err != nil {
		return 0, err
	}
	// 1 + be/100*days/year == 1 + y/100*days/year: with both legs on one
	// basis the break-even financing rate is the yield itself.
	be := y
	r.breakEven = &be
	return be, nil
}
