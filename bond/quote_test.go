package bond_test

import (
	"errors"
	"testing"

	"github.com/Neezydeezy/fincomepy/bond"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		quote string
		want  float64
	}{
		{"100-0+", 100.015625},
		{"99-30", 99.9375},
		{"98-08+", 98.265625},
		{"139-13", 139.40625},
		{"112-17", 112.53125},
		{"104", 104},
		{"100-0", 100},
		{" 99 - 16 ", 99.5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.quote, func(t *testing.T) {
			t.Parallel()

			got, err := bond.ParsePrice(tc.quote)
			if err != nil {
				t.Fatalf("ParsePrice(%q): %v", tc.quote, err)
			}
			if got != tc.want {
				t.Fatalf("ParsePrice(%q) = %v, want %v", tc.quote, got, tc.want)
			}
		})
	}
}

func TestParsePriceRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, quote := range []string{
		"",
		"1-2-3",
		"xx-08",
		"100-",
		"100-xx",
		"99.5",
		"99-16.5",
	} {
		quote := quote
		t.Run(quote, func(t *testing.T) {
			t.Parallel()

			if _, err := bond.ParsePrice(quote); !errors.Is(err, bond.ErrInvalidPriceFormat) {
				t.Fatalf("ParsePrice(%q) err = %v, want ErrInvalidPriceFormat", quote, err)
			}
		})
	}
}
