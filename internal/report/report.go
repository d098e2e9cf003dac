// Package report turns an affordability result into display-ready text.
package report

import (
	"fmt"
	"strconv"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

// Line is one label/value pair in a section.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a titled group of lines.
type Section struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// EquityRow is one formatted year of the equity projection.
type EquityRow struct {
	Year          string `json:"year"`
	LoanBalance   string `json:"loan_balance"`
	Equity        string `json:"equity"`
	PropertyValue string `json:"property_value"`
	PrincipalPaid string `json:"principal_paid"`
	Appreciation  string `json:"appreciation"`
}

type Report struct {
	Affordable bool        `json:"affordable"`
	Headline   string      `json:"headline"`
	Sections   []Section   `json:"sections"`
	Equity     []EquityRow `json:"equity"`
	Notes      []string    `json:"notes"`
}

const notAffordableHeadline = "No property in the search range is affordable with these savings and borrowing capacity"

// Section titles
const (
	TitleSummary   = "Summary"
	TitleSavings   = "Savings Breakdown"
	TitleFunding   = "Property Funding"
	TitleBorrowing = "Borrowing Breakdown"
	TitleRepayment = "Monthly Repayments"
)

// Build formats result for display. schedule may be empty.
func Build(in domain.AffordabilityInput, result domain.AffordabilityResult, schedule []domain.EquityYearPoint) Report {
	if !result.Affordable {
		return Report{
			Headline: notAffordableHeadline,
			Sections: []Section{},
			Equity:   []EquityRow{},
			Notes:    []string{},
		}
	}

	r := Report{
		Affordable: true,
		Headline: fmt.Sprintf("Maximum property price in %s: %s",
			in.Jurisdiction.Name(), utils.FormatCurrency(result.MaxPropertyPrice)),
		Sections: []Section{
			summarySection(result),
			savingsSection(in, result),
			fundingSection(result),
			borrowingSection(in, result),
			repaymentSection(in, result),
		},
		Equity: equityRows(schedule),
		Notes:  notes(in, result),
	}
	return r
}

// LMIDepositPercent is the share of the price the LMI cover contributes
// towards the deposit.
func LMIDepositPercent(result domain.AffordabilityResult) float64 {
	if result.MaxPropertyPrice == 0 {
		return 0
	}
	return float64(result.LMIContribution) / float64(result.MaxPropertyPrice) * 100
}

// BorrowedForProperty includes the portion of the deposit advanced under LMI.
func BorrowedForProperty(result domain.AffordabilityResult) int64 {
	return result.Borrowing.Property + result.LMIContribution
}

// RemainingCapacity is borrowing capacity left once the LMI advance is
// counted against it. It goes negative when the LMI advance exceeds the
// headroom.
func RemainingCapacity(in domain.AffordabilityInput, result domain.AffordabilityResult) int64 {
	return in.BorrowingCapacity - (result.TotalBorrowed + result.LMIContribution)
}

func summarySection(result domain.AffordabilityResult) Section {
	return Section{
		Title: TitleSummary,
		Lines: []Line{
			money("Maximum property price", result.MaxPropertyPrice),
			{Label: "LMI deposit contribution", Value: utils.FormatPercent(LMIDepositPercent(result), 2)},
			money("Required deposit", result.RequiredDeposit),
			money("LMI premium", result.LMIPremium),
			money("Stamp duty", result.StampDuty),
			money("Total property cost", result.TotalPropertyCost),
			{Label: "Loan to value ratio", Value: utils.FormatPercent(result.LVRPercent, 2)},
		},
	}
}

func savingsSection(in domain.AffordabilityInput, result domain.AffordabilityResult) Section {
	s := result.Savings
	lines := []Line{
		money("Money saved up", in.MoneySavedUp),
		money("LMI premium", s.LMIPremium),
		money("Deposit", s.Deposit),
		money("Stamp duty", s.StampDuty),
	}
	if s.Charges > 0 {
		lines = append(lines, money("Foreign buyer duty", s.Charges))
	}
	lines = append(lines,
		money("Applied to property", s.Property),
		money("Total savings used", result.TotalSavingsUsed),
		money("Remaining savings", result.RemainingSavings),
	)
	return Section{Title: TitleSavings, Lines: lines}
}

func fundingSection(result domain.AffordabilityResult) Section {
	return Section{
		Title: TitleFunding,
		Lines: []Line{
			money("Deposit from savings", result.DepositFromSavings),
			money("Deposit from LMI", result.LMIContribution),
			money("Savings applied to property", result.Savings.Property),
			money("Borrowed for property", BorrowedForProperty(result)),
		},
	}
}

func borrowingSection(in domain.AffordabilityInput, result domain.AffordabilityResult) Section {
	b := result.Borrowing
	lines := []Line{
		money("Borrowing capacity", in.BorrowingCapacity),
		money("Total borrowed for property", BorrowedForProperty(result)),
		money("Borrowed for stamp duty", b.StampDuty),
	}
	if b.Charges > 0 {
		lines = append(lines, money("Borrowed for foreign buyer duty", b.Charges))
	}
	lines = append(lines,
		money("Total borrowed", result.TotalBorrowed),
		money("Remaining capacity", RemainingCapacity(in, result)),
	)
	return Section{Title: TitleBorrowing, Lines: lines}
}

func repaymentSection(in domain.AffordabilityInput, result domain.AffordabilityResult) Section {
	return Section{
		Title: TitleRepayment,
		Lines: []Line{
			money("Monthly repayment", result.MonthlyRepayment),
			{Label: "Repayment type", Value: in.RepaymentType.Name()},
			{Label: "Interest rate", Value: utils.FormatPercent(in.AnnualInterestRatePercent, 2)},
			{Label: "Loan term", Value: utils.FormatYears(in.RepaymentPeriodYears)},
		},
	}
}

func equityRows(schedule []domain.EquityYearPoint) []EquityRow {
	rows := make([]EquityRow, 0, len(schedule))
	for _, p := range schedule {
		rows = append(rows, EquityRow{
			Year:          strconv.Itoa(p.Year),
			LoanBalance:   utils.FormatCurrency(p.LoanBalance),
			Equity:        utils.FormatCurrency(p.Equity),
			PropertyValue: utils.FormatCurrency(p.PropertyValue),
			PrincipalPaid: utils.FormatCurrency(p.PrincipalPaidCumulative),
			Appreciation:  utils.FormatCurrency(p.AppreciationCumulative),
		})
	}
	return rows
}

func notes(in domain.AffordabilityInput, result domain.AffordabilityResult) []string {
	out := make([]string, 0, len(result.Exemptions)+2)
	out = append(out, fmt.Sprintf("%s purchasing in %s", in.BuyerType.Name(), in.Jurisdiction.Name()))
	out = append(out, result.Exemptions...)
	if result.ForeignSurcharge > 0 {
		out = append(out, "Foreign buyer duty: "+utils.FormatCurrency(result.ForeignSurcharge))
	}
	return out
}

func money(label string, amount int64) Line {
	return Line{Label: label, Value: utils.FormatCurrency(amount)}
}
