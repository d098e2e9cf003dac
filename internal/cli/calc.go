package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/internal/report"
)

type calcOptions struct {
	scenario  string
	noHistory bool
	asJSON    bool

	capacity     int64
	savings      int64
	deposit      float64
	lmi          float64
	years        int
	rate         float64
	appreciation float64
	repayment    string
	jurisdiction string
	buyer        string
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	opts := &calcOptions{}
	defaults := DefaultScenario()

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Find the maximum affordable property price",
		Example: `  affordability calc --capacity 600000 --savings 100000 --deposit 10 --lmi 2
  affordability calc --scenario sydney.toml --buyer first-home`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := opts.input(cmd)
			if err != nil {
				return err
			}
			return runCalc(cmd, root, opts, in)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.scenario, "scenario", "s", "", "TOML scenario file; flags override its values")
	f.BoolVar(&opts.noHistory, "no-history", false, "Do not record the calculation")
	f.BoolVar(&opts.asJSON, "json", false, "Print the calculation and report as JSON")

	f.Int64Var(&opts.capacity, "capacity", defaults.BorrowingCapacity, "Borrowing capacity in dollars")
	f.Int64Var(&opts.savings, "savings", defaults.MoneySavedUp, "Money saved up in dollars")
	f.Float64Var(&opts.deposit, "deposit", defaults.DepositPercent, "Target deposit percent of price")
	f.Float64Var(&opts.lmi, "lmi", defaults.LMICoveragePercent, "Maximum LMI contribution percent of price (0-10)")
	f.IntVar(&opts.years, "years", defaults.RepaymentPeriodYears, "Loan term in years")
	f.Float64Var(&opts.rate, "rate", defaults.AnnualInterestRatePercent, "Annual interest rate percent")
	f.Float64Var(&opts.appreciation, "appreciation", defaults.PropertyAppreciationPercent, "Annual property appreciation percent")
	f.StringVar(&opts.repayment, "repayment", string(defaults.RepaymentType), "principal-interest or interest-only")
	f.StringVarP(&opts.jurisdiction, "jurisdiction", "j", string(defaults.Jurisdiction), "NSW, VIC, QLD, WA, SA, TAS, ACT or NT")
	f.StringVarP(&opts.buyer, "buyer", "b", string(defaults.BuyerType), "first-home, owner-occupier, investor or foreign")

	return cmd
}

// input merges the scenario file, if any, with the flags. Without a file
// every flag applies; with one only flags set on the command line do.
func (o *calcOptions) input(cmd *cobra.Command) (domain.AffordabilityInput, error) {
	in := DefaultScenario()
	changed := func(string) bool { return true }

	if o.scenario != "" {
		loaded, err := LoadScenario(o.scenario)
		if err != nil {
			return in, err
		}
		in = loaded
		changed = cmd.Flags().Changed
	}

	if changed("capacity") {
		in.BorrowingCapacity = o.capacity
	}
	if changed("savings") {
		in.MoneySavedUp = o.savings
	}
	if changed("deposit") {
		in.DepositPercent = o.deposit
	}
	if changed("lmi") {
		in.LMICoveragePercent = o.lmi
	}
	if changed("years") {
		in.RepaymentPeriodYears = o.years
	}
	if changed("rate") {
		in.AnnualInterestRatePercent = o.rate
	}
	if changed("appreciation") {
		in.PropertyAppreciationPercent = o.appreciation
	}
	if changed("repayment") {
		in.RepaymentType = domain.RepaymentType(o.repayment)
	}
	if changed("jurisdiction") {
		in.Jurisdiction = domain.Jurisdiction(o.jurisdiction)
	}
	if changed("buyer") {
		in.BuyerType = domain.BuyerType(o.buyer)
	}

	return in, nil
}

func runCalc(cmd *cobra.Command, root *rootOptions, opts *calcOptions, in domain.AffordabilityInput) error {
	ctx := cmd.Context()

	if err := in.Validate(); err != nil {
		return err
	}

	sess, err := openSession(ctx, root.dbPath, !opts.noHistory)
	if err != nil {
		return err
	}
	defer sess.close()

	var calc *domain.Calculation
	if opts.noHistory {
		calc, err = sess.svc.Project(in)
	} else {
		calc, err = sess.svc.Calculate(ctx, in)
	}
	if err != nil {
		return err
	}

	rep := report.Build(calc.Input, calc.Result, calc.EquitySchedule)
	return printCalculation(cmd.OutOrStdout(), calc, rep, opts.asJSON)
}

func printCalculation(w io.Writer, calc *domain.Calculation, rep report.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*domain.Calculation
			Report report.Report `json:"report"`
		}{calc, rep})
	}

	_, err := fmt.Fprint(w, RenderReport(rep))
	return err
}
