package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

const (
	// LMIThresholdLVR is the LVR at or below which no LMI is charged.
	LMIThresholdLVR = 80.0
	// MinimumLMIPremium is the smallest premium an insurer will write.
	MinimumLMIPremium int64 = 1500
)

type lmiBand struct {
	MaxLVR float64
	Rate   decimal.Decimal
}

// Bands are checked in order; the last band catches everything above 95%.
var (
	ownerOccupierBands = []lmiBand{
		{MaxLVR: 85, Rate: dec("0.0062")},
		{MaxLVR: 90, Rate: dec("0.0124")},
		{MaxLVR: 95, Rate: dec("0.0186")},
		{MaxLVR: 100, Rate: dec("0.0248")},
	}
	investorBands = []lmiBand{
		{MaxLVR: 85, Rate: dec("0.0089")},
		{MaxLVR: 90, Rate: dec("0.0178")},
		{MaxLVR: 95, Rate: dec("0.0267")},
		{MaxLVR: 100, Rate: dec("0.0356")},
	}
)

// PremiumRate returns the premium rate for an LVR band. Investors pay the
// higher table; every other buyer type shares the owner occupier table.
func PremiumRate(lvrPercent float64, buyer domain.BuyerType) decimal.Decimal {
	if lvrPercent <= LMIThresholdLVR {
		return decimal.Zero
	}

	bands := ownerOccupierBands
	if buyer == domain.BuyerInvestor {
		bands = investorBands
	}

	for _, band := range bands[:len(bands)-1] {
		if lvrPercent <= band.MaxLVR {
			return band.Rate
		}
	}
	return bands[len(bands)-1].Rate
}

// ComputePremium returns the LMI premium for a loan, or zero when the LVR
// does not require insurance.
func ComputePremium(loanAmount int64, lvrPercent float64, buyer domain.BuyerType) int64 {
	rate := PremiumRate(lvrPercent, buyer)
	if rate.IsZero() {
		return 0
	}

	premium := utils.RoundDecimal(decimal.NewFromInt(loanAmount).Mul(rate))
	return utils.MaxInt64(premium, MinimumLMIPremium)
}
