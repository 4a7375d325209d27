package bond

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CashFlow is a single dated cash payment in currency units.
type CashFlow struct {
	Date   time.Time
	Amount decimal.Decimal
}

// CashFlows scales the remaining coupon schedule to a face value and returns
// the payments in ascending date order, cent-rounded, with the redemption
// amount folded into the maturity payment. Amounts are decimal so position
// sized schedules stay exact.
func (b *Bond) CashFlows(face decimal.Decimal) ([]CashFlow, error) {
	if face.Sign() <= 0 {
		return nil, fmt.Errorf("bond.CashFlows: face value must be positive, got %s", face)
	}

	coupon := face.Mul(decimal.NewFromFloat(b.couponRate)).
		Div(decimal.NewFromInt(int64(b.frequency) * 100))
	redemption := face.Mul(decimal.NewFromFloat(b.redemption)).
		Div(decimal.NewFromInt(100))

	dates := CouponDates(b.settlement, b.maturity, b.frequency)
	out := make([]CashFlow, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		d := dates[i]
		if !d.After(b.settlement) {
			continue
		}
		amount := coupon
		if d.Equal(b.maturity) {
			amount = amount.Add(redemption)
		}
		out = append(out, CashFlow{Date: d, Amount: amount.Round(2)})
	}
	return out, nil
}
