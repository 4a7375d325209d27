package bond

import (
	"time"

	"github.com/Neezydeezy/fincomepy/utils"
)

// PrevCouponDate returns the coupon payment date on or before settlement.
// Coupon dates are anchored at maturity and stepped back in whole coupon
// intervals; when maturity falls on a month end, every date in the schedule
// rolls on month ends. The basis parameter is part of the signature for
// symmetry with the accrual functions but plays no role in the date logic.
func PrevCouponDate(settlement, maturity time.Time, frequency int, basis utils.Basis) time.Time {
	pcd, _ := couponWindow(settlement, maturity, frequency)
	return pcd
}

// NextCouponDate returns the first coupon payment date strictly after
// settlement. See PrevCouponDate for the schedule rules.
func NextCouponDate(settlement, maturity time.Time, frequency int, basis utils.Basis) time.Time {
	_, ncd := couponWindow(settlement, maturity, frequency)
	return ncd
}

// CouponDates returns the coupon schedule in descending order, from maturity
// back past settlement. The count follows the whole-month difference between
// settlement and maturity, so the earliest date lands within one coupon
// interval of settlement.
func CouponDates(settlement, maturity time.Time, frequency int) []time.Time {
	interval := 12 / frequency
	count := utils.MonthsBetween(settlement, maturity)/interval + 1

	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, shiftCoupon(maturity, -interval*i))
	}
	return dates
}

// couponWindow returns the coupon dates bracketing settlement, with
// pcd <= settlement < ncd.
func couponWindow(settlement, maturity time.Time, frequency int) (pcd, ncd time.Time) {
	interval := 12 / frequency
	months := utils.MonthsBetween(settlement, maturity)
	n := (months + interval - 1) / interval

	pcd = shiftCoupon(maturity, -interval*n)
	// Whole-month arithmetic ignores the day of month, so it can land one
	// period short when settlement sits just before a coupon day in the
	// same calendar month.
	for pcd.After(settlement) {
		n++
		pcd = shiftCoupon(maturity, -interval*n)
	}
	ncd = shiftCoupon(maturity, -interval*(n-1))
	return pcd, ncd
}

// shiftCoupon moves a coupon date by whole months, keeping schedules of
// month-end maturities on month ends.
func shiftCoupon(maturity time.Time, months int) time.Time {
	d := utils.AddMonth(maturity, months)
	if utils.IsMonthEnd(maturity) {
		return utils.LastDayOfMonth(d)
	}
	return d
}
