package main

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Neezydeezy/fincomepy/bond"
	"github.com/Neezydeezy/fincomepy/instruments/govies"
	"github.com/Neezydeezy/fincomepy/marketdata/cbot"
	"github.com/Neezydeezy/fincomepy/scenario"
)

func main() {
	settlement := time.Date(2020, 7, 15, 0, 0, 0, 0, time.UTC)
	maturity := time.Date(2030, 5, 15, 0, 0, 0, 0, time.UTC)

	// 0.625% UST of May 2030 quoted 100-0+.
	ust, err := govies.USTreasury.NewBondQuoted(settlement, maturity, 0.625, "100-0+")
	if err != nil {
		log.Fatal(err)
	}

	yld, err := ust.Yield()
	if err != nil {
		log.Fatal(err)
	}
	mod, err := ust.ModDuration()
	if err != nil {
		log.Fatal(err)
	}
	dv01, err := ust.DV01()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Accrued interest: %.6f\n", ust.AccruedInterest())
	fmt.Printf("Dirty price: %.6f\n", ust.DirtyPrice())
	fmt.Printf("Yield: %.6f%%\n", yld)
	fmt.Printf("Modified duration: %.4f\n", mod)
	fmt.Printf("DV01: %.6f\n", dv01)

	ladder, err := scenario.Compute(scenario.Input{
		Bond:     ust,
		ShocksBP: []float64{-50, -25, 25, 50},
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, row := range ladder.Rows {
		fmt.Printf("Shock %+.0fbp: full %+.4f, taylor %+.4f, error %+.6f\n",
			row.ShockBP, row.FullReval, row.Taylor, row.Error)
	}

	// Cash-and-carry on the deliverable into the ten-year contract.
	factor, ok := cbot.DefaultFactorFeed().Factor("TY", "912828ZQ6")
	if !ok {
		log.Fatal("no conversion factor for 912828ZQ6")
	}
	future, err := bond.NewFuture(bond.FutureParams{
		Bond: bond.Params{
			Settlement: time.Date(2020, 7, 16, 0, 0, 0, 0, time.UTC),
			Maturity:   maturity,
			CouponRate: 0.625,
			Quote:      "99-30+",
			Frequency:  govies.USTreasury.Frequency,
			Basis:      govies.USTreasury.Basis,
		},
		RepoPeriodDays:   32,
		RepoRate:         0.145,
		FuturesQuote:     "139-13",
		ConversionFactor: factor,
		Year:             govies.USTreasury.Year,
	})
	if err != nil {
		log.Fatal(err)
	}

	fwdYield, err := future.ForwardYield()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Forward price: %.6f\n", future.ForwardPrice())
	fmt.Printf("Net basis: %.4f 32nds\n", future.NetBasis())
	fmt.Printf("Implied repo: %.4f%%\n", future.ImpliedRepoRate())
	fmt.Printf("Forward yield: %.6f%%\n", fwdYield)

	if ty, ok := cbot.Lookup("TY"); ok {
		fmt.Printf("Net basis per %s contract: %s\n", ty.Symbol, ty.BasisValue(future.NetBasis()))
	}

	// Financing 100mm of the position for a month.
	repo, err := bond.NewRepo(bond.RepoParams{
		Bond: bond.Params{
			Settlement: time.Date(2020, 7, 16, 0, 0, 0, 0, time.UTC),
			Maturity:   maturity,
			CouponRate: 0.625,
			CleanPrice: 99.953125,
			Frequency:  govies.USTreasury.Frequency,
			Basis:      govies.USTreasury.Basis,
		},
		FaceValue:      decimal.NewFromInt(100_000_000),
		RepoPeriodDays: 32,
		RepoRate:       0.145,
		Year:           govies.USTreasury.Year,
	})
	if err != nil {
		log.Fatal(err)
	}

	breakEven, err := repo.BreakEvenRate()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Repo start payment: %s\n", repo.StartPayment().StringFixed(2))
	fmt.Printf("Repo end payment: %s\n", repo.EndPayment().StringFixed(2))
	fmt.Printf("Break-even repo rate: %.4f%%\n", breakEven)
}
