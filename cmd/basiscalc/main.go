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
	"github.com/Neezydeezy/fincomepy/marketdata/cbot"
	"github.com/Neezydeezy/fincomepy/utils"
)

type basisInput struct {
	TaskID          string  `json:"task_id,omitempty"`
	SettlementDate  string  `json:"settlement_date"`
	MaturityDate    string  `json:"maturity_date"`
	CouponRate      float64 `json:"coupon_rate"`
	CleanPrice      float64 `json:"clean_price,omitempty"`
	Quote           string  `json:"quote,omitempty"`
	CouponFrequency int     `json:"coupon_frequency,omitempty"`
	DayCountBasis   *int    `json:"day_count_basis,omitempty"`
	// FuturesPrice and FuturesQuote are alternatives, as for the cash
	// price.
	FuturesPrice     float64 `json:"futures_price,omitempty"`
	FuturesQuote     string  `json:"futures_quote,omitempty"`
	ConversionFactor float64 `json:"conversion_factor"`
	RepoRate         float64 `json:"repo_rate"`
	RepoPeriodDays   int     `json:"repo_period_days,omitempty"`
	RepoEndDate      string  `json:"repo_end_date,omitempty"`
	MoneyMarketYear  int     `json:"money_market_year,omitempty"`
	// Contract, when set, prices the net basis in currency per contract.
	Contract string `json:"contract,omitempty"`
}

type basisOutput struct {
	TaskID            string  `json:"task_id,omitempty"`
	SettlementDate    string  `json:"settlement_date,omitempty"`
	RepoEndDate       string  `json:"repo_end_date,omitempty"`
	DirtyPrice        float64 `json:"dirty_price,omitempty"`
	ForwardPrice      float64 `json:"forward_price,omitempty"`
	AccruedAtDelivery float64 `json:"accrued_at_delivery,omitempty"`
	FullFutureValue   float64 `json:"full_future_value,omitempty"`
	NetBasis32nds     float64 `json:"net_basis_32nds,omitempty"`
	ImpliedRepoRate   float64 `json:"implied_repo_rate,omitempty"`
	ForwardYield      float64 `json:"forward_yield,omitempty"`
	ContractName      string  `json:"contract_name,omitempty"`
	TickValue         string  `json:"tick_value,omitempty"`
	BasisValue        string  `json:"basis_value,omitempty"`
	Error             string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: basiscalc -input <path>")
		fmt.Fprintln(os.Stderr, "Compute forward price, net basis, implied repo and forward yield for a deliverable bond.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: basiscalc -input <path>")
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
	log.Infow("processing futures basis", "inputs", len(inputs))

	hadError := false
	outputs := make([]basisOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			log.Errorw("futures basis failed", "task_id", in.TaskID, "err", err)
			outputs = append(outputs, basisOutput{TaskID: in.TaskID, Error: err.Error()})
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

func process(in basisInput) (*basisOutput, error) {
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

	f, err := bond.NewFuture(bond.FutureParams{
		Bond: bond.Params{
			Settlement: settlement,
			Maturity:   maturity,
			CouponRate: in.CouponRate,
			CleanPrice: in.CleanPrice,
			Quote:      in.Quote,
			Frequency:  frequency,
			Basis:      basis,
		},
		RepoPeriodDays:   in.RepoPeriodDays,
		RepoEnd:          repoEnd,
		RepoRate:         in.RepoRate,
		FuturesPrice:     in.FuturesPrice,
		FuturesQuote:     in.FuturesQuote,
		ConversionFactor: in.ConversionFactor,
		Year:             bond.MoneyMarketYear(in.MoneyMarketYear),
	})
	if err != nil {
		return nil, err
	}

	fwdYield, err := f.ForwardYield()
	if err != nil {
		return nil, err
	}

	out := &basisOutput{
		TaskID:            in.TaskID,
		SettlementDate:    in.SettlementDate,
		RepoEndDate:       f.RepoEndDate().Format("2006-01-02"),
		DirtyPrice:        f.Bond().DirtyPrice(),
		ForwardPrice:      f.ForwardPrice(),
		AccruedAtDelivery: f.AccruedAtDelivery(),
		FullFutureValue:   f.FullFutureValue(),
		NetBasis32nds:     f.NetBasis(),
		ImpliedRepoRate:   f.ImpliedRepoRate(),
		ForwardYield:      fwdYield,
	}

	if in.Contract != "" {
		spec, ok := cbot.Lookup(in.Contract)
		if !ok {
			return nil, fmt.Errorf("unknown contract %q", in.Contract)
		}
		out.ContractName = spec.Name
		out.TickValue = spec.TickValue().String()
		out.BasisValue = spec.BasisValue(f.NetBasis()).StringFixed(2)
	}
	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]basisInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []basisInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input basisInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []basisInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(basisOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
