package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/affordability-engine/internal/domain"
)

func sampleInput() domain.AffordabilityInput {
	return domain.AffordabilityInput{
		BorrowingCapacity:         600000,
		MoneySavedUp:              100000,
		DepositPercent:            10,
		LMICoveragePercent:        2,
		RepaymentPeriodYears:      30,
		AnnualInterestRatePercent: 6.35,
		RepaymentType:             domain.RepaymentPrincipalInterest,
		Jurisdiction:              domain.JurisdictionNSW,
		BuyerType:                 domain.BuyerOwnerOccupier,
	}
}

func sampleResult() domain.AffordabilityResult {
	return domain.AffordabilityResult{
		Affordable:             true,
		MaxPropertyPrice:       675847,
		LMIContributionPercent: 2,
		RequiredDeposit:        67585,
		LMIPremium:             11565,
		LMICoverage:            13517,
		StampDuty:              25621,
		Exemptions:             []string{},
		TotalPropertyCost:      713033,
		DepositFromSavings:     54068,
		LMIContribution:        13517,
		Savings: domain.SavingsAllocation{
			LMIPremium: 11565, Deposit: 54068, StampDuty: 25621, Property: 8746,
		},
		TotalSavingsUsed: 100000,
		Borrowing:        domain.BorrowingAllocation{Property: 599516},
		TotalBorrowed:    599516,
		LVRPercent:       92,
		MonthlyRepayment: 3730,
	}
}

func lineValue(t *testing.T, r Report, title, label string) string {
	t.Helper()
	for _, s := range r.Sections {
		if s.Title != title {
			continue
		}
		for _, l := range s.Lines {
			if l.Label == label {
				return l.Value
			}
		}
	}
	require.Failf(t, "line not found", "%s / %s", title, label)
	return ""
}

func TestBuild(t *testing.T) {
	schedule := []domain.EquityYearPoint{
		{Year: 0, LoanBalance: 613033, Equity: 62814, PropertyValue: 675847},
		{Year: 1, LoanBalance: 605849, Equity: 69998, PropertyValue: 675847, PrincipalPaidCumulative: 7184},
	}

	r := Build(sampleInput(), sampleResult(), schedule)

	assert.True(t, r.Affordable)
	assert.Equal(t, "Maximum property price in New South Wales: $675,847", r.Headline)
	require.Len(t, r.Sections, 5)

	assert.Equal(t, "$675,847", lineValue(t, r, TitleSummary, "Maximum property price"))
	assert.Equal(t, "2.00%", lineValue(t, r, TitleSummary, "LMI deposit contribution"))
	assert.Equal(t, "$11,565", lineValue(t, r, TitleSummary, "LMI premium"))
	assert.Equal(t, "$713,033", lineValue(t, r, TitleSummary, "Total property cost"))

	assert.Equal(t, "$8,746", lineValue(t, r, TitleSavings, "Applied to property"))
	assert.Equal(t, "$100,000", lineValue(t, r, TitleSavings, "Total savings used"))
	assert.Equal(t, "$0", lineValue(t, r, TitleSavings, "Remaining savings"))

	assert.Equal(t, "$613,033", lineValue(t, r, TitleBorrowing, "Total borrowed for property"))
	assert.Equal(t, "-$13,033", lineValue(t, r, TitleBorrowing, "Remaining capacity"))

	assert.Equal(t, "$3,730", lineValue(t, r, TitleRepayment, "Monthly repayment"))
	assert.Equal(t, "30 years", lineValue(t, r, TitleRepayment, "Loan term"))
	assert.Equal(t, "Principal & Interest", lineValue(t, r, TitleRepayment, "Repayment type"))

	require.Len(t, r.Equity, 2)
	assert.Equal(t, EquityRow{
		Year: "1", LoanBalance: "$605,849", Equity: "$69,998", PropertyValue: "$675,847",
		PrincipalPaid: "$7,184", Appreciation: "$0",
	}, r.Equity[1])

	assert.Equal(t, []string{"Owner Occupier purchasing in New South Wales"}, r.Notes)
}

func TestBuild_Notes(t *testing.T) {
	in := sampleInput()
	in.BuyerType = domain.BuyerForeign
	result := sampleResult()
	result.ForeignSurcharge = 47880
	result.Exemptions = []string{"Full first home buyer exemption (≤ $650,000)"}
	result.Savings.Charges = 1000
	result.Borrowing.Charges = 46880

	r := Build(in, result, nil)

	assert.Equal(t, []string{
		"Foreign Buyer purchasing in New South Wales",
		"Full first home buyer exemption (≤ $650,000)",
		"Foreign buyer duty: $47,880",
	}, r.Notes)
	assert.Equal(t, "$1,000", lineValue(t, r, TitleSavings, "Foreign buyer duty"))
	assert.Equal(t, "$46,880", lineValue(t, r, TitleBorrowing, "Borrowed for foreign buyer duty"))
	assert.Empty(t, r.Equity)
}

func TestBuild_NotAffordable(t *testing.T) {
	r := Build(sampleInput(), domain.NotAffordable(), nil)

	assert.False(t, r.Affordable)
	assert.Equal(t, notAffordableHeadline, r.Headline)
	assert.Empty(t, r.Sections)
	assert.Empty(t, r.Equity)
	assert.Empty(t, r.Notes)
}

func TestDisplayArithmetic(t *testing.T) {
	in := sampleInput()
	result := sampleResult()

	assert.InDelta(t, 2.0, LMIDepositPercent(result), 0.001)
	assert.Equal(t, int64(613033), BorrowedForProperty(result))
	assert.Equal(t, int64(600000-599516-13517), RemainingCapacity(in, result))
	assert.Zero(t, LMIDepositPercent(domain.NotAffordable()))
}
