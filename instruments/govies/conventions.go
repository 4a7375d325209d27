// Package govies carries quoting conventions for the major sovereign
// fixed-coupon markets and builds bonds under them.
package govies

import (
	"time"

	"github.com/Neezydeezy/fincomepy/bond"
	"github.com/Neezydeezy/fincomepy/utils"
)

// Convention groups the terms a sovereign market quotes its fixed-coupon
// issues on: coupon frequency, accrual basis, redemption value, and the
// money-market year used to finance positions in that currency.
type Convention struct {
	Name       string
	Frequency  int
	Basis      utils.Basis
	Redemption float64
	Year       bond.MoneyMarketYear
}

// Preset conventions for the benchmark sovereign markets.
var (
	USTreasury = Convention{
		Name:       "US Treasury",
		Frequency:  2,
		Basis:      utils.ActAct,
		Redemption: 100,
		Year:       bond.Year360,
	}

	GermanBund = Convention{
		Name:       "German Bund",
		Frequency:  1,
		Basis:      utils.ActAct,
		Redemption: 100,
		Year:       bond.Year360,
	}

	FrenchOAT = Convention{
		Name:       "French OAT",
		Frequency:  1,
		Basis:      utils.ActAct,
		Redemption: 100,
		Year:       bond.Year360,
	}

	ItalianBTP = Convention{
		Name:       "Italian BTP",
		Frequency:  2,
		Basis:      utils.ActAct,
		Redemption: 100,
		Year:       bond.Year360,
	}

	UKGilt = Convention{
		Name:       "UK Gilt",
		Frequency:  2,
		Basis:      utils.ActAct,
		Redemption: 100,
		Year:       bond.Year365,
	}

	JapanJGB = Convention{
		Name:       "Japan JGB",
		Frequency:  2,
		Basis:      utils.Act365,
		Redemption: 100,
		Year:       bond.Year365,
	}
)

// NewBond builds a bond from a numeric clean price under the market's
// quoting terms.
func (c Convention) NewBond(settlement, maturity time.Time, couponRate, cleanPrice float64) (*bond.Bond, error) {
	return bond.New(bond.Params{
		Settlement: settlement,
		Maturity:   maturity,
		CouponRate: couponRate,
		CleanPrice: cleanPrice,
		Frequency:  c.Frequency,
		Basis:      c.Basis,
		Redemption: c.Redemption,
	})
}

// NewBondQuoted builds a bond from a 32nds quote string, the form UST and
// futures markets trade in.
func (c Convention) NewBondQuoted(settlement, maturity time.Time, couponRate float64, quote string) (*bond.Bond, error) {
	return bond.New(bond.Params{
		Settlement: settlement,
		Maturity:   maturity,
		CouponRate: couponRate,
		Quote:      quote,
		Frequency:  c.Frequency,
		Basis:      c.Basis,
		Redemption: c.Redemption,
	})
}
