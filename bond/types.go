package bond

// MoneyMarketYear is the day denominator for repo-style simple interest.
type MoneyMarketYear int

const (
	// Year360 is the US treasury and euro money-market convention.
	Year360 MoneyMarketYear = 360
	// Year365 is the sterling and yen money-market convention.
	Year365 MoneyMarketYear = 365
)

func (y MoneyMarketYear) valid() bool {
	return y == Year360 || y == Year365
}
