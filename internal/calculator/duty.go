package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

// unbounded marks the open-ended top bracket of a duty table.
const unbounded int64 = -1

// Bracket is one progressive duty band. Duty for a price inside the band is
// Base + (price - lower bound) * Rate, where the lower bound is the previous
// bracket's UpTo (zero for the first bracket).
type Bracket struct {
	UpTo int64
	Base decimal.Decimal
	Rate decimal.Decimal
}

type concessionFunc func(price int64, fullDuty decimal.Decimal) decimal.Decimal

// firstHomeRule describes first home buyer relief. Prices at or below
// ExemptUpTo pay nothing. Prices up to ConcessionUpTo pay ConcessionalDuty(price, full duty).
type firstHomeRule struct {
	AlwaysExempt     bool
	ExemptUpTo       int64
	ExemptionLabel   string
	ConcessionUpTo   int64
	ConcessionLabel  string
	ConcessionalDuty concessionFunc
}

// DutySchedule is a jurisdiction's full duty rule set.
type DutySchedule struct {
	Brackets    []Bracket
	FirstHome   firstHomeRule
	ForeignRate decimal.Decimal
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var dutySchedules = map[domain.Jurisdiction]DutySchedule{
	domain.JurisdictionNSW: {
		Brackets: []Bracket{
			{UpTo: 14000, Base: dec("0"), Rate: dec("0.0125")},
			{UpTo: 32000, Base: dec("175"), Rate: dec("0.015")},
			{UpTo: 85000, Base: dec("445"), Rate: dec("0.0175")},
			{UpTo: 319000, Base: dec("1372.50"), Rate: dec("0.035")},
			{UpTo: 1064000, Base: dec("9562.50"), Rate: dec("0.045")},
			{UpTo: unbounded, Base: dec("43087.50"), Rate: dec("0.055")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:       650000,
			ExemptionLabel:   "Full first home buyer exemption (≤ $650,000)",
			ConcessionUpTo:   800000,
			ConcessionLabel:  "First home buyer concession applied ($650,001 - $800,000)",
			ConcessionalDuty: nswConcessionalDuty,
		},
		ForeignRate: dec("0.08"),
	},
	domain.JurisdictionVIC: {
		Brackets: []Bracket{
			{UpTo: 25000, Base: dec("0"), Rate: dec("0.014")},
			{UpTo: 130000, Base: dec("350"), Rate: dec("0.024")},
			{UpTo: 960000, Base: dec("2870"), Rate: dec("0.055")},
			{UpTo: unbounded, Base: dec("48520"), Rate: dec("0.065")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:       600000,
			ExemptionLabel:   "Full first home buyer exemption (≤ $600,000)",
			ConcessionUpTo:   750000,
			ConcessionLabel:  "First home buyer concession applied ($600,001 - $750,000)",
			ConcessionalDuty: slidingScale(600000, 750000),
		},
		ForeignRate: dec("0.08"),
	},
	domain.JurisdictionQLD: {
		Brackets: []Bracket{
			{UpTo: 5000, Base: dec("0"), Rate: dec("0")},
			{UpTo: 75000, Base: dec("0"), Rate: dec("0.015")},
			{UpTo: 540000, Base: dec("1050"), Rate: dec("0.035")},
			{UpTo: 1000000, Base: dec("17325"), Rate: dec("0.045")},
			{UpTo: unbounded, Base: dec("38025"), Rate: dec("0.0575")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:     550000,
			ExemptionLabel: "Full first home buyer exemption (≤ $550,000)",
		},
		ForeignRate: dec("0.08"),
	},
	domain.JurisdictionWA: {
		Brackets: []Bracket{
			{UpTo: 120000, Base: dec("0"), Rate: dec("0.0015")},
			{UpTo: 150000, Base: dec("180"), Rate: dec("0.0025")},
			{UpTo: 360000, Base: dec("255"), Rate: dec("0.04")},
			{UpTo: 725000, Base: dec("8655"), Rate: dec("0.05")},
			{UpTo: unbounded, Base: dec("26905"), Rate: dec("0.06")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:       430000,
			ExemptionLabel:   "Full first home buyer exemption (≤ $430,000)",
			ConcessionUpTo:   530000,
			ConcessionLabel:  "First home buyer concession applied ($430,001 - $530,000)",
			ConcessionalDuty: slidingScale(430000, 530000),
		},
		ForeignRate: dec("0.07"),
	},
	domain.JurisdictionSA: {
		Brackets: []Bracket{
			{UpTo: 12000, Base: dec("0"), Rate: dec("0.01")},
			{UpTo: 30000, Base: dec("120"), Rate: dec("0.02")},
			{UpTo: 50000, Base: dec("480"), Rate: dec("0.03")},
			{UpTo: 100000, Base: dec("1080"), Rate: dec("0.035")},
			{UpTo: 200000, Base: dec("2830"), Rate: dec("0.04")},
			{UpTo: 250000, Base: dec("6830"), Rate: dec("0.045")},
			{UpTo: 300000, Base: dec("9080"), Rate: dec("0.05")},
			{UpTo: 500000, Base: dec("11580"), Rate: dec("0.055")},
			{UpTo: unbounded, Base: dec("22580"), Rate: dec("0.06")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:     650000,
			ExemptionLabel: "Full first home buyer exemption (≤ $650,000)",
		},
		ForeignRate: dec("0.07"),
	},
	domain.JurisdictionTAS: {
		Brackets: []Bracket{
			{UpTo: 3000, Base: dec("0"), Rate: dec("0.01")},
			{UpTo: 25000, Base: dec("30"), Rate: dec("0.015")},
			{UpTo: 75000, Base: dec("360"), Rate: dec("0.025")},
			{UpTo: 200000, Base: dec("1610"), Rate: dec("0.035")},
			{UpTo: 375000, Base: dec("5985"), Rate: dec("0.04")},
			{UpTo: 725000, Base: dec("12985"), Rate: dec("0.045")},
			{UpTo: unbounded, Base: dec("28735"), Rate: dec("0.05")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:     600000,
			ExemptionLabel: "Full first home buyer exemption (≤ $600,000)",
		},
		ForeignRate: dec("0.08"),
	},
	domain.JurisdictionACT: {
		Brackets: []Bracket{
			{UpTo: 200000, Base: dec("0"), Rate: dec("0")},
			{UpTo: 300000, Base: dec("0"), Rate: dec("0.012")},
			{UpTo: 500000, Base: dec("1200"), Rate: dec("0.016")},
			{UpTo: 750000, Base: dec("4400"), Rate: dec("0.02")},
			{UpTo: 1000000, Base: dec("9400"), Rate: dec("0.024")},
			{UpTo: unbounded, Base: dec("15400"), Rate: dec("0.0475")},
		},
		FirstHome: firstHomeRule{
			AlwaysExempt:   true,
			ExemptionLabel: "First home buyer exemption - no stamp duty",
		},
		ForeignRate: dec("0.125"),
	},
	domain.JurisdictionNT: {
		// Rates are fractions of a percent: 0.06% then 0.0515% then 0.0575%.
		Brackets: []Bracket{
			{UpTo: 25000, Base: dec("0"), Rate: dec("0.0006")},
			{UpTo: 3000000, Base: dec("15"), Rate: dec("0.000515")},
			{UpTo: unbounded, Base: dec("1547.125"), Rate: dec("0.000575")},
		},
		FirstHome: firstHomeRule{
			ExemptUpTo:     650000,
			ExemptionLabel: "Full first home buyer exemption (≤ $650,000)",
		},
		ForeignRate: dec("0.055"),
	},
}

// ScheduleFor returns the duty rules for j.
func ScheduleFor(j domain.Jurisdiction) (DutySchedule, bool) {
	s, ok := dutySchedules[j]
	return s, ok
}

// BaseDuty applies the progressive brackets with no buyer relief.
func (s DutySchedule) BaseDuty(price int64) decimal.Decimal {
	if price <= 0 {
		return decimal.Zero
	}

	var lower int64
	for _, b := range s.Brackets {
		if b.UpTo == unbounded || price <= b.UpTo {
			return b.Base.Add(decimal.NewFromInt(price - lower).Mul(b.Rate))
		}
		lower = b.UpTo
	}
	return decimal.Zero
}

// ComputeDuty returns transfer duty, exemption notes and foreign surcharge for
// a purchase. Unknown jurisdictions owe nothing.
func ComputeDuty(price int64, j domain.Jurisdiction, buyer domain.BuyerType) domain.DutyResult {
	result := domain.DutyResult{Exemptions: []string{}}

	schedule, ok := ScheduleFor(j)
	if !ok {
		return result
	}

	duty := schedule.BaseDuty(price)

	if buyer == domain.BuyerFirstHome {
		rule := schedule.FirstHome
		switch {
		case rule.AlwaysExempt, price <= rule.ExemptUpTo:
			duty = decimal.Zero
			result.Exemptions = append(result.Exemptions, rule.ExemptionLabel)
		case rule.ConcessionalDuty != nil && price <= rule.ConcessionUpTo:
			duty = decimal.Max(decimal.Zero, rule.ConcessionalDuty(price, duty))
			result.Exemptions = append(result.Exemptions, rule.ConcessionLabel)
		}
	}

	var surcharge decimal.Decimal
	if buyer == domain.BuyerForeign {
		surcharge = decimal.NewFromInt(price).Mul(schedule.ForeignRate)
	}

	result.StampDuty = utils.RoundDecimal(duty)
	result.ForeignSurcharge = utils.RoundDecimal(surcharge)
	return result
}

// nswConcessionalDuty deducts a concession of up to $25,000 that tapers
// linearly to nothing across the $650,000 - $800,000 band.
func nswConcessionalDuty(price int64, fullDuty decimal.Decimal) decimal.Decimal {
	maxConcession := decimal.NewFromInt(25000)
	excess := decimal.NewFromInt(price - 650000)
	concession := maxConcession.Sub(excess.Mul(maxConcession).Div(decimal.NewFromInt(150000)))
	return fullDuty.Sub(decimal.Max(decimal.Zero, concession))
}

// slidingScale charges full duty scaled by how far the price sits into the
// (from, to] band: nothing at from, full duty at to.
func slidingScale(from, to int64) concessionFunc {
	return func(price int64, fullDuty decimal.Decimal) decimal.Decimal {
		share := decimal.NewFromInt(price - from).Div(decimal.NewFromInt(to - from))
		return fullDuty.Mul(share)
	}
}
