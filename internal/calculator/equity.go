package calculator

import (
	"math"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

// MaxProjectionYears caps the equity projection horizon.
const MaxProjectionYears = 10

// EquityParams describes the loan and property being projected.
type EquityParams struct {
	PropertyPrice       int64
	InitialLoanBalance  int64
	AnnualRatePercent   float64
	TermYears           int
	MonthlyPayment      int64
	AppreciationPercent float64
	RepaymentType       domain.RepaymentType
}

// BuildEquitySchedule projects loan balance, property value and equity for
// years 0..min(10, term). Year 0 is the position at settlement.
func BuildEquitySchedule(p EquityParams) []domain.EquityYearPoint {
	years := p.TermYears
	if years > MaxProjectionYears {
		years = MaxProjectionYears
	}
	if years < 0 {
		years = 0
	}

	monthlyRate := p.AnnualRatePercent / 100 / 12
	growth := p.AppreciationPercent / 100
	price := float64(p.PropertyPrice)
	payment := float64(p.MonthlyPayment)

	balance := float64(p.InitialLoanBalance)
	principalPaid := 0.0

	schedule := make([]domain.EquityYearPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		value := price * math.Pow(1+growth, float64(year))

		schedule = append(schedule, domain.EquityYearPoint{
			Year:                    year,
			LoanBalance:             utils.RoundHalfUp(balance),
			Equity:                  utils.RoundHalfUp(value - balance),
			PropertyValue:           utils.RoundHalfUp(value),
			PrincipalPaidCumulative: utils.RoundHalfUp(principalPaid),
			AppreciationCumulative:  utils.RoundHalfUp(value - price),
		})

		if year == years || p.RepaymentType == domain.RepaymentInterestOnly {
			continue
		}

		for month := 0; month < 12; month++ {
			interest := balance * monthlyRate
			next := math.Max(0, balance-(payment-interest))
			principalPaid += balance - next
			balance = next
			if balance <= 0 {
				break
			}
		}
	}

	return schedule
}
