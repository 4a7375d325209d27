package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Neezydeezy/fincomepy/bond"
	"github.com/Neezydeezy/fincomepy/internal/logger"
	"github.com/Neezydeezy/fincomepy/scenario"
	"github.com/Neezydeezy/fincomepy/utils"
)

type calcInput struct {
	TaskID         string  `json:"task_id,omitempty"`
	SettlementDate string  `json:"settlement_date"`
	MaturityDate   string  `json:"maturity_date"`
	CouponRate     float64 `json:"coupon_rate"`
	// CleanPrice and Quote are alternatives; the quote wins when both are
	// set.
	CleanPrice      float64 `json:"clean_price,omitempty"`
	Quote           string  `json:"quote,omitempty"`
	CouponFrequency int     `json:"coupon_frequency,omitempty"`
	// DayCountBasis uses the Excel coding: 0=30/360 US, 1=act/act,
	// 2=act/360, 3=act/365, 4=30E/360. Omitted means act/act.
	DayCountBasis *int      `json:"day_count_basis,omitempty"`
	Redemption    float64   `json:"redemption,omitempty"`
	ShocksBP      []float64 `json:"shocks_bp,omitempty"`
}

type scenarioRow struct {
	ShockBP   float64 `json:"shock_bp"`
	FullReval float64 `json:"full_reval"`
	Taylor    float64 `json:"taylor"`
	Error     float64 `json:"error"`
}

type calcOutput struct {
	TaskID          string        `json:"task_id,omitempty"`
	SettlementDate  string        `json:"settlement_date,omitempty"`
	MaturityDate    string        `json:"maturity_date,omitempty"`
	CleanPrice      float64       `json:"clean_price,omitempty"`
	AccruedInterest float64       `json:"accrued_interest,omitempty"`
	DirtyPrice      float64       `json:"dirty_price,omitempty"`
	PreviousCoupon  string        `json:"previous_coupon,omitempty"`
	NextCoupon      string        `json:"next_coupon,omitempty"`
	Yield           float64       `json:"yield,omitempty"`
	MacDuration     float64       `json:"mac_duration,omitempty"`
	ModDuration     float64       `json:"mod_duration,omitempty"`
	DV01            float64       `json:"dv01,omitempty"`
	Convexity       float64       `json:"convexity,omitempty"`
	Scenarios       []scenarioRow `json:"scenarios,omitempty"`
	Error           string        `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: bondcalc -input <path>")
		fmt.Fprintln(os.Stderr, "Compute yield, duration, DV01 and convexity for fixed-coupon bonds.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: bondcalc -input <path>")
			os.Exit(2)
		}
	}

	log := logger.New()
	defer log.Sync()

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}
	log.Infow("processing bond analytics", "inputs", len(inputs))

	hadError := false
	outputs := make([]calcOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			log.Errorw("bond analytics failed", "task_id", in.TaskID, "err", err)
			outputs = append(outputs, calcOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in calcInput) (*calcOutput, error) {
	settlement, err := time.Parse("2006-01-02", in.SettlementDate)
	if err != nil {
		return nil, fmt.Errorf("invalid settlement_date: %v", err)
	}
	maturity, err := time.Parse("2006-01-02", in.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("invalid maturity_date: %v", err)
	}

	frequency := in.CouponFrequency
	if frequency == 0 {
		frequency = 2
	}
	basis := utils.ActAct
	if in.DayCountBasis != nil {
		basis = utils.Basis(*in.DayCountBasis)
	}

	b, err := bond.New(bond.Params{
		Settlement: settlement,
		Maturity:   maturity,
		CouponRate: in.CouponRate,
		CleanPrice: in.CleanPrice,
		Quote:      in.Quote,
		Frequency:  frequency,
		Basis:      basis,
		Redemption: in.Redemption,
	})
	if err != nil {
		return nil, err
	}

	yld, err := b.Yield()
	if err != nil {
		return nil, err
	}
	mac, err := b.MacDuration()
	if err != nil {
		return nil, err
	}
	mod, err := b.ModDuration()
	if err != nil {
		return nil, err
	}
	dv01, err := b.DV01()
	if err != nil {
		return nil, err
	}
	convex, err := b.Convexity()
	if err != nil {
		return nil, err
	}

	out := &calcOutput{
		TaskID:          in.TaskID,
		SettlementDate:  in.SettlementDate,
		MaturityDate:    in.MaturityDate,
		CleanPrice:      b.CleanPrice(),
		AccruedInterest: b.AccruedInterest(),
		DirtyPrice:      b.DirtyPrice(),
		PreviousCoupon:  b.PrevCoupon().Format("2006-01-02"),
		NextCoupon:      b.NextCoupon().Format("2006-01-02"),
		Yield:           yld,
		MacDuration:     mac,
		ModDuration:     mod,
		DV01:            dv01,
		Convexity:       convex,
	}

	if len(in.ShocksBP) > 0 {
		res, err := scenario.Compute(scenario.Input{Bond: b, ShocksBP: in.ShocksBP})
		if err != nil {
			return nil, err
		}
		rows := make([]scenarioRow, 0, len(res.Rows))
		for _, row := range res.Rows {
			rows = append(rows, scenarioRow{
				ShockBP:   row.ShockBP,
				FullReval: row.FullReval,
				Taylor:    row.Taylor,
				Error:     row.Error,
			})
		}
		out.Scenarios = rows
	}
	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]calcInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []calcInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input calcInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []calcInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(calcOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
