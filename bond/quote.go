package bond

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a treasury-style quote into a price in percent of par.
// Quotes read "N", "N-F", or "N-F+": N whole points, F 32nds of a point, and
// a trailing "+" worth half a 32nd. "99-30" is 99.9375; "100-0+" is
// 100.015625. Prices already held as numbers do not go through this parser.
func ParsePrice(quote string) (float64, error) {
	parts := strings.Split(quote, "-")
	if len(parts) > 2 {
		return 0, fmt.Errorf("ParsePrice: %w: %q has more than one separator", ErrInvalidPriceFormat, quote)
	}

	whole, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("ParsePrice: %w: %q", ErrInvalidPriceFormat, quote)
	}
	if len(parts) == 1 {
		return float64(whole), nil
	}

	frac := strings.TrimSpace(parts[1])
	half := 0.0
	if strings.HasSuffix(frac, "+") {
		half = 0.5
		frac = strings.TrimSuffix(frac, "+")
	}
	ticks, err := strconv.Atoi(frac)
	if err != nil {
		return 0, fmt.Errorf("ParsePrice: %w: %q", ErrInvalidPriceFormat, quote)
	}
	return float64(whole) + (float64(ticks)+half)/32, nil
}
