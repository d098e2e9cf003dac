package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

type dutyOptions struct {
	price        int64
	jurisdiction string
	buyer        string
}

func newDutyCmd(root *rootOptions) *cobra.Command {
	opts := &dutyOptions{}

	cmd := &cobra.Command{
		Use:   "duty",
		Short: "Quote transfer duty for a purchase",
		Long:  "Quote transfer duty for one jurisdiction, or compare every jurisdiction when none is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDuty(cmd, root, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.price, "price", "p", 0, "Property price in dollars")
	cmd.Flags().StringVarP(&opts.jurisdiction, "jurisdiction", "j", "", "Jurisdiction; all when empty")
	cmd.Flags().StringVarP(&opts.buyer, "buyer", "b", string(domain.BuyerOwnerOccupier), "Buyer type")

	return cmd
}

func runDuty(cmd *cobra.Command, root *rootOptions, opts *dutyOptions) error {
	sess, err := openSession(cmd.Context(), root.dbPath, false)
	if err != nil {
		return err
	}

	jurisdictions := domain.Jurisdictions
	if opts.jurisdiction != "" {
		jurisdictions = []domain.Jurisdiction{domain.Jurisdiction(strings.ToUpper(opts.jurisdiction))}
	}

	buyer := domain.BuyerType(opts.buyer)
	t := Table{
		Title:   fmt.Sprintf("%s, %s", utils.FormatCurrency(opts.price), buyer.Name()),
		Headers: []string{"Jurisdiction", "Stamp Duty", "Foreign Surcharge", "Total"},
	}
	var exemptions []string

	for _, j := range jurisdictions {
		quote, err := sess.svc.QuoteDuty(cmd.Context(), domain.DutyQuoteRequest{
			PropertyPrice: opts.price,
			Jurisdiction:  j,
			BuyerType:     buyer,
		})
		if err != nil {
			return err
		}

		t.Rows = append(t.Rows, []string{
			string(j),
			utils.FormatCurrency(quote.StampDuty),
			utils.FormatCurrency(quote.ForeignSurcharge),
			utils.FormatCurrency(quote.Total()),
		})
		for _, e := range quote.Exemptions {
			exemptions = append(exemptions, fmt.Sprintf("%s: %s", j, e))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, RenderTitle("TRANSFER DUTY"))
	fmt.Fprintln(out)
	fmt.Fprint(out, RenderTable(t))
	for _, e := range exemptions {
		fmt.Fprintln(out, mutedStyle.Render("  • "+e))
	}

	return nil
}
