package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain mid-month", date(2020, time.July, 15), 6, date(2021, time.January, 15)},
		{"backward mid-month", date(2030, time.May, 15), -120, date(2020, time.May, 15)},
		{"jan 31 to feb clamps", date(2021, time.January, 31), 1, date(2021, time.February, 28)},
		{"jan 31 to leap feb clamps", date(2020, time.January, 31), 1, date(2020, time.February, 29)},
		{"may 31 back to nov 30", date(2030, time.May, 31), -6, date(2029, time.November, 30)},
		{"feb 29 plus a year clamps", date(2020, time.February, 29), 12, date(2021, time.February, 28)},
		{"oct 31 to apr 30", date(2020, time.October, 31), 6, date(2021, time.April, 30)},
		{"day 30 stays day 30", date(2020, time.June, 30), 1, date(2020, time.July, 30)},
		{"year boundary backward", date(2021, time.January, 15), -2, date(2020, time.November, 15)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := AddMonth(tc.start, tc.months)
			if !got.Equal(tc.want) {
				t.Fatalf("AddMonth(%s, %d) = %s, want %s",
					tc.start.Format("2006-01-02"), tc.months, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2020, time.July, 15), date(2030, time.May, 15), 118},
		{date(2020, time.May, 15), date(2030, time.May, 15), 120},
		{date(2020, time.November, 14), date(2030, time.May, 15), 114},
		{date(2020, time.January, 31), date(2020, time.February, 1), 1},
		{date(2020, time.March, 1), date(2020, time.March, 31), 0},
		{date(2021, time.March, 1), date(2020, time.March, 1), -12},
	}

	for _, tc := range cases {
		if got := MonthsBetween(tc.start, tc.end); got != tc.want {
			t.Errorf("MonthsBetween(%s, %s) = %d, want %d",
				tc.start.Format("2006-01-02"), tc.end.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestLastDayOfMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want time.Time
	}{
		{date(2020, time.February, 11), date(2020, time.February, 29)},
		{date(2019, time.February, 1), date(2019, time.February, 28)},
		{date(2020, time.December, 25), date(2020, time.December, 31)},
		{date(2020, time.April, 30), date(2020, time.April, 30)},
	}

	for _, tc := range cases {
		if got := LastDayOfMonth(tc.in); !got.Equal(tc.want) {
			t.Errorf("LastDayOfMonth(%s) = %s, want %s",
				tc.in.Format("2006-01-02"), got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestIsMonthEnd(t *testing.T) {
	t.Parallel()

	if !IsMonthEnd(date(2020, time.February, 29)) {
		t.Error("2020-02-29 should be a month end")
	}
	if IsMonthEnd(date(2020, time.February, 28)) {
		t.Error("2020-02-28 is not a month end in a leap year")
	}
	if !IsMonthEnd(date(2030, time.June, 30)) {
		t.Error("2030-06-30 should be a month end")
	}
	if IsMonthEnd(date(2030, time.May, 15)) {
		t.Error("2030-05-15 is not a month end")
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	if got := Days(date(2020, time.May, 15), date(2020, time.November, 15)); got != 184 {
		t.Errorf("Days = %v, want 184", got)
	}
	if got := Days(date(2020, time.July, 16), date(2020, time.November, 15)); got != 122 {
		t.Errorf("Days = %v, want 122", got)
	}
}

func TestDateParser(t *testing.T) {
	t.Parallel()

	got := DateParser("2030-05-15")
	if !got.Equal(date(2030, time.May, 15)) {
		t.Fatalf("DateParser = %s, want 2030-05-15", got.Format("2006-01-02"))
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	if got := RoundTo(0.1036005434, 4); got != 0.1036 {
		t.Errorf("RoundTo = %v, want 0.1036", got)
	}
	if got := RoundTo(100.1192255, 2); got != 100.12 {
		t.Errorf("RoundTo = %v, want 100.12", got)
	}
}
