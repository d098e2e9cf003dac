package calculator

import (
	"math"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

// MonthlyRepayment returns the whole-dollar monthly repayment on a loan.
//
// Interest-only loans pay loan * annualRate / 1200. Principal and interest
// loans use the annuity formula M = P*r*(1+r)^n / ((1+r)^n - 1), or a flat
// P/n when the rate is zero.
func MonthlyRepayment(loanAmount int64, annualRatePercent float64, termYears int, repaymentType domain.RepaymentType) int64 {
	if loanAmount <= 0 {
		return 0
	}

	principal := float64(loanAmount)
	monthlyRate := annualRatePercent / 100 / 12

	if repaymentType == domain.RepaymentInterestOnly {
		return utils.RoundHalfUp(principal * monthlyRate)
	}

	payments := float64(termYears * 12)
	if payments <= 0 {
		return 0
	}

	if monthlyRate == 0 {
		return utils.RoundHalfUp(principal / payments)
	}

	growth := math.Pow(1+monthlyRate, payments)
	return utils.RoundHalfUp(principal * monthlyRate * growth / (growth - 1))
}
