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

	"github.com/shopspring/decimal"

	"github.com/Neezydeezy/fincomepy/bond"
	"github.com/Neezydeezy/fincomepy/internal/logger"
	"github.com/Neezydeezy/fincomepy/utils"
)

type repoInput struct {
	TaskID          string  `json:"task_id,omitempty"`
	SettlementDate  string  `json:"settlement_date"`
	MaturityDate    string  `json:"maturity_date"`
	CouponRate      float64 `json:"coupon_rate"`
	CleanPrice      float64 `json:"clean_price,omitempty"`
	Quote           string  `json:"quote,omitempty"`
	CouponFrequency int     `json:"coupon_frequency,omitempty"`
	DayCountBasis   *int    `json:"day_count_basis,omitempty"`
	// FaceValue is the position face in currency; numbers and quoted
	// strings both parse.
	FaceValue       decimal.Decimal `json:"face_value"`
	RepoRate        float64         `json:"repo_rate"`
	RepoPeriodDays  int             `json:"repo_period_days,omitempty"`
	RepoEndDate     string          `json:"repo_end_date,omitempty"`
	MoneyMarketYear int             `json:"money_market_year,omitempty"`
}

type repoOutput struct {
	TaskID          string  `json:"task_id,omitempty"`
	SettlementDate  string  `json:"settlement_date,omitempty"`
	RepoEndDate     string  `json:"repo_end_date,omitempty"`
	DirtyPrice      float64 `json:"dirty_price,omitempty"`
	AccruedInterest float64 `json:"accrued_interest,omitempty"`
	StartPayment    string  `json:"start_payment,omitempty"`
	EndPayment      string  `json:"end_payment,omitempty"`
	Yield           float64 `json:"yield,omitempty"`
	BreakEvenRate   float64 `json:"break_even_rate,omitempty"`
	Error           string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: repocalc -input <path>")
		fmt.Fprintln(os.Stderr, "Compute start/end payments and break-even rate for a term repo on a bond position.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: repocalc -input <path>")
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
	log.Infow("processing repo", "inputs", len(inputs))

	hadError := false
	outputs := make([]repoOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			log.Errorw("repo failed", "task_id", in.TaskID, "err", err)
			outputs = append(outputs, repoOutput{TaskID: in.TaskID, Error: err.Error()})
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

func process(in repoInput) (*repoOutput, error) {
	settlement, err := time.Parse("2006-01-02", in.SettlementDate)
	if err != nil {
		return nil, fmt.Errorf("invalid settlement_date: %v", err)
	}
	maturity, err := time.Parse("2006-01-02", in.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("invalid maturity_date: %v", err)
	}
	var repoEnd time.Time
	if in.RepoEndDate != "" {
		repoEnd, err = time.Parse("2006-01-02", in.RepoEndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid repo_end_date: %v", err)
		}
	}

	frequency := in.CouponFrequency
	if frequency == 0 {
		frequency = 2
	}
	basis := utils.ActAct
	if in.DayCountBasis != nil {
		basis = utils.Basis(*in.DayCountBasis)
	}

	r, err := bond.NewRepo(bond.RepoParams{
		Bond: bond.Params{
			Settlement: settlement,
			Maturity:   maturity,
			CouponRate: in.CouponRate,
			CleanPrice: in.CleanPrice,
			Quote:      in.Quote,
			Frequency:  frequency,
			Basis:      basis,
		},
		FaceValue:      in.FaceValue,
		RepoPeriodDays: in.RepoPeriodDays,
		RepoEnd:        repoEnd,
		RepoRate:       in.RepoRate,
		Year:           bond.MoneyMarketYear(in.MoneyMarketYear),
	})
	if err != nil {
		return nil, err
	}

	yld, err := r.Bond().Yield()
	if err != nil {
		return nil, err
	}
	breakEven, err := r.BreakEvenRate()
	if err != nil {
		return nil, err
	}

	return &repoOutput{
		TaskID:          in.TaskID,
		SettlementDate:  in.SettlementDate,
		RepoEndDate:     r.EndDate().Format("2006-01-02"),
		DirtyPrice:      r.Bond().DirtyPrice(),
		AccruedInterest: r.Bond().AccruedInterest(),
		StartPayment:    r.StartPayment().StringFixed(2),
		EndPayment:      r.EndPayment().StringFixed(2),
		Yield:           yld,
		BreakEvenRate:   breakEven,
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]repoInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []repoInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input repoInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []repoInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(repoOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
