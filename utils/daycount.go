package utils

import (
	"time"
)

// Basis is an Excel-style day count convention code.
type Basis int

const (
	Thirty360US Basis = iota // 0: 30/360 US (NASD)
	ActAct                   // 1: actual/actual
	Act360                   // 2: actual/360
	Act365                   // 3: actual/365
	ThirtyE360               // 4: 30E/360
)

// DayCount returns the signed day count from date1 to date2 under the given
// basis. Bases 1, 2 and 3 all count raw calendar days; the 360 or 365 year
// denominator is applied by the caller.
//
// Basis 0 carries the NASD fictions: a February month-end counts as day 30
// (for date2 only when both dates are February month-ends), date2's day 31
// drops to 30 when date1 sits on day 30 or 31, and date1's day 31 drops
// to 30.
func DayCount(date1, date2 time.Time, basis Basis) int {
	switch basis {
	case Thirty360US:
		d1, d2 := date1.Day(), date2.Day()
		if febMonthEnd(date1) && febMonthEnd(date2) {
			d2 = 30
		}
		if febMonthEnd(date1) {
			d1 = 30
		}
		if d2 == 31 && d1 >= 30 {
			d2 = 30
		}
		if d1 == 31 {
			d1 = 30
		}
		return thirty360(date1, date2, d1, d2)
	case ThirtyE360:
		d1, d2 := date1.Day(), date2.Day()
		if d1 == 31 {
			d1 = 30
		}
		if d2 == 31 {
			d2 = 30
		}
		return thirty360(date1, date2, d1, d2)
	default:
		return int(Days(date1, date2))
	}
}

func thirty360(date1, date2 time.Time, d1, d2 int) int {
	return 360*(date2.Year()-date1.Year()) + 30*(MonthInt(date2)-MonthInt(date1)) + (d2 - d1)
}

func febMonthEnd(t time.Time) bool {
	return t.Month() == time.February && IsMonthEnd(t)
}
