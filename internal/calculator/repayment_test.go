package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segyhp/affordability-engine/internal/domain"
)

func TestMonthlyRepayment(t *testing.T) {
	tests := []struct {
		name     string
		loan     int64
		rate     float64
		years    int
		kind     domain.RepaymentType
		expected int64
	}{
		{name: "standard 30 year loan", loan: 500000, rate: 6, years: 30, kind: domain.RepaymentPrincipalInterest, expected: 2998},
		{name: "25 year loan", loan: 400000, rate: 5, years: 25, kind: domain.RepaymentPrincipalInterest, expected: 2338},
		{name: "zero loan", loan: 0, rate: 6, years: 30, kind: domain.RepaymentPrincipalInterest, expected: 0},
		{name: "zero rate divides evenly", loan: 120000, rate: 0, years: 10, kind: domain.RepaymentPrincipalInterest, expected: 1000},
		{name: "zero rate rounds the final amount", loan: 100000, rate: 0, years: 30, kind: domain.RepaymentPrincipalInterest, expected: 278},
		{name: "interest only", loan: 500000, rate: 6, years: 30, kind: domain.RepaymentInterestOnly, expected: 2500},
		{name: "interest only at zero rate", loan: 500000, rate: 0, years: 30, kind: domain.RepaymentInterestOnly, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthlyRepayment(tt.loan, tt.rate, tt.years, tt.kind))
		})
	}
}

func TestMonthlyRepayment_HigherRateCostsMore(t *testing.T) {
	low := MonthlyRepayment(600000, 5.5, 30, domain.RepaymentPrincipalInterest)
	high := MonthlyRepayment(600000, 6.5, 30, domain.RepaymentPrincipalInterest)
	assert.Greater(t, high, low)
}
