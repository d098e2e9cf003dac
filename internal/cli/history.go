package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/segyhp/affordability-engine/internal/report"
	"github.com/segyhp/affordability-engine/internal/service"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, root, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", service.DefaultListLimit, "Number of calculations to show")

	cmd.AddCommand(newHistoryShowCmd(root), newHistoryPurgeCmd(root))
	return cmd
}

func runHistory(cmd *cobra.Command, root *rootOptions, limit int) error {
	sess, err := openSession(cmd.Context(), root.dbPath, true)
	if err != nil {
		return err
	}
	defer sess.close()

	summaries, err := sess.svc.ListCalculations(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "\n  No calculations recorded.")
		return nil
	}

	t := Table{Headers: []string{"ID", "When", "State", "Buyer", "Max Price"}}
	for _, s := range summaries {
		price := badStyle.Render("not affordable")
		if s.Affordable {
			price = goodStyle.Render(utils.FormatCurrency(s.MaxPropertyPrice))
		}
		t.Rows = append(t.Rows, []string{
			s.ID.String(),
			humanize.Time(s.CreatedAt),
			string(s.Jurisdiction),
			s.BuyerType.Name(),
			price,
		})
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, RenderTitle("CALCULATION HISTORY"))
	fmt.Fprintln(out)
	fmt.Fprint(out, RenderTable(t))
	return nil
}

func newHistoryShowCmd(root *rootOptions) *cobra.Command {
	var export, asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recorded calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), root.dbPath, true)
			if err != nil {
				return err
			}
			defer sess.close()

			calc, err := sess.svc.GetCalculation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if export {
				scenario, err := EncodeScenario(calc.Input)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), scenario)
				return err
			}

			rep := report.Build(calc.Input, calc.Result, calc.EquitySchedule)
			return printCalculation(cmd.OutOrStdout(), calc, rep, asJSON)
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "Print the inputs as a TOML scenario file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the calculation and report as JSON")

	return cmd
}

func newHistoryPurgeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete calculations older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := openSession(cmd.Context(), root.dbPath, true)
			if err != nil {
				return err
			}
			defer sess.close()

			deleted, err := sess.svc.PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Deleted %s calculations\n", humanize.Comma(deleted))
			return nil
		},
	}
}
