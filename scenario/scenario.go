// Package scenario revalues a bond under parallel yield shocks and compares
// the exact repricing against the duration-convexity estimate.
package scenario

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/Neezydeezy/fincomepy/bond"
)

// Input is a shock ladder request. Shocks are parallel yield moves in basis
// points; zero and negative entries are allowed, duplicates are not.
type Input struct {
	Bond     *bond.Bond
	ShocksBP []float64
}

// Row is one rung of the ladder. FullReval and Taylor are dirty price
// changes in percent of par; Error is Taylor minus FullReval.
type Row struct {
	ShockBP   float64
	FullReval float64
	Taylor    float64
	Error     float64
}

// Result is the computed ladder with summary statistics over the absolute
// approximation errors.
type Result struct {
	BaseYield float64
	BaseDirty float64
	Rows      []Row

	MaxAbsError  float64
	MeanAbsError float64
	ErrorStdDev  float64
}

// Compute revalues the bond at its solved yield plus each shock and sets the
// Taylor estimate from the bond's DV01 and convexity beside it. Rows come
// back in the order the shocks were given.
func Compute(in Input) (*Result, error) {
	if in.Bond == nil {
		return nil, fmt.Errorf("scenario.Compute: Bond is required")
	}
	if len(in.ShocksBP) == 0 {
		return nil, fmt.Errorf("scenario.Compute: at least one shock is required")
	}

	b := in.Bond
	baseYield, err := b.Yield()
	if err != nil {
		return nil, fmt.Errorf("scenario.Compute: %w", err)
	}
	baseDirty := b.DirtyPrice()

	rows := make([]Row, 0, len(in.ShocksBP))
	absErrs := make([]float64, 0, len(in.ShocksBP))
	seen := make(map[float64]struct{}, len(in.ShocksBP))
	for _, shockBP := range in.ShocksBP {
		if math.IsNaN(shockBP) || math.IsInf(shockBP, 0) {
			return nil, fmt.Errorf("scenario.Compute: shock %v is not finite", shockBP)
		}
		if _, ok := seen[shockBP]; ok {
			return nil, fmt.Errorf("scenario.Compute: duplicate shock %v", shockBP)
		}
		seen[shockBP] = struct{}{}

		shockPerc := shockBP / 100
		shocked := bond.DirtyPrice(b.Settlement(), b.Maturity(), b.CouponRate(),
			baseYield+shockPerc, b.Redemption(), b.Frequency(), b.Basis())
		full := shocked - baseDirty

		taylor, err := b.PriceChange(shockPerc)
		if err != nil {
			return nil, fmt.Errorf("scenario.Compute: %w", err)
		}

		row := Row{
			ShockBP:   shockBP,
			FullReval: full,
			Taylor:    taylor,
			Error:     taylor - full,
		}
		rows = append(rows, row)
		absErrs = append(absErrs, math.Abs(row.Error))
	}

	maxErr, err := stats.Max(absErrs)
	if err != nil {
		return nil, fmt.Errorf("scenario.Compute: max error: %w", err)
	}
	meanErr, err := stats.Mean(absErrs)
	if err != nil {
		return nil, fmt.Errorf("scenario.Compute: mean error: %w", err)
	}
	stdev := 0.0
	if len(absErrs) >= 2 {
		stdev, err = stats.StandardDeviationSample(absErrs)
		if err != nil {
			return nil, fmt.Errorf("scenario.Compute: error stdev: %w", err)
		}
	}

	return &Result{
		BaseYield:    baseYield,
		BaseDirty:    baseDirty,
		Rows:         rows,
		MaxAbsError:  maxErr,
		MeanAbsError: meanErr,
		ErrorStdDev:  stdev,
	}, nil
}
