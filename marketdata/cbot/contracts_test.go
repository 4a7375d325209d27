package cbot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Neezydeezy/fincomepy/marketdata/cbot"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, symbol := range []string{"TY", "ty", " Ty "} {
		spec, ok := cbot.Lookup(symbol)
		if !ok {
			t.Fatalf("Lookup(%q) missed", symbol)
		}
		if spec.Name != "10-Year T-Note" {
			t.Fatalf("Lookup(%q).Name = %q", symbol, spec.Name)
		}
	}

	if _, ok := cbot.Lookup("ZN9"); ok {
		t.Fatal("Lookup accepted an unknown symbol")
	}
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	want := []string{"FV", "TU", "TY", "UB", "US", "UXY"}
	if diff := cmp.Diff(want, cbot.Symbols()); diff != "" {
		t.Fatalf("Symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestTickValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		symbol string
		want   string
	}{
		{"TU", "15.625"}, // quarter of a 32nd on 200k face
		{"FV", "7.8125"},
		{"TY", "15.625"},
		{"US", "31.25"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.symbol, func(t *testing.T) {
			t.Parallel()

			spec, ok := cbot.Lookup(tc.symbol)
			if !ok {
				t.Fatalf("Lookup(%q) missed", tc.symbol)
			}
			if got := spec.TickValue(); got.String() != tc.want {
				t.Fatalf("TickValue = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBasisValue(t *testing.T) {
	t.Parallel()

	spec, ok := cbot.Lookup("TY")
	if !ok {
		t.Fatal("Lookup(TY) missed")
	}

	// 1.25 32nds of basis on 100k face.
	if got := spec.BasisValue(1.25); got.String() != "39.06" {
		t.Fatalf("BasisValue(1.25) = %s, want 39.06", got)
	}
	if got := spec.BasisValue(0); !got.IsZero() {
		t.Fatalf("BasisValue(0) = %s, want 0", got)
	}
	if got := spec.BasisValue(-1.25); got.String() != "-39.06" {
		t.Fatalf("BasisValue(-1.25) = %s, want -39.06", got)
	}
}

func TestDeliveryWindows(t *testing.T) {
	t.Parallel()

	for _, symbol := range cbot.Symbols() {
		spec, _ := cbot.Lookup(symbol)
		lo, hi := spec.RemainingTermYears[0], spec.RemainingTermYears[1]
		if !(lo > 0 && lo < hi) {
			t.Fatalf("%s window [%v, %v] is not ordered", symbol, lo, hi)
		}
	}
}

func TestConversionFactorFeed(t *testing.T) {
	t.Parallel()

	feed := cbot.NewMapConversionFactorFeed(map[string]float64{
		"ty|912828zq6": 0.7164,
	})

	got, ok := feed.Factor("TY", "912828ZQ6")
	if !ok || got != 0.7164 {
		t.Fatalf("Factor = %v, %v; want 0.7164, true", got, ok)
	}
	if _, ok := feed.Factor("TY", "912828XX0"); ok {
		t.Fatal("Factor matched an unknown cusip")
	}
}

func TestDefaultFactorFeed(t *testing.T) {
	t.Parallel()

	feed := cbot.DefaultFactorFeed()
	got, ok := feed.Factor("ty", "912828zq6")
	if !ok {
		t.Fatal("bundled factor missing for 912828ZQ6")
	}
	if got <= 0.5 || got >= 1 {
		t.Fatalf("factor %v outside the plausible band", got)
	}
}
