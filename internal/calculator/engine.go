package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/segyhp/affordability-engine/internal/domain"
	customError "github.com/segyhp/affordability-engine/pkg/errors"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

// Strategy selects how the engine searches for the maximum price.
type Strategy string

const (
	// StrategyOptimized searches every LMI contribution level from zero up to
	// the requested cap and keeps the best price found at any level.
	StrategyOptimized Strategy = "optimized"
	// StrategySinglePass searches only at the requested LMI level.
	StrategySinglePass Strategy = "single-pass"
)

func (s Strategy) Valid() bool {
	return s == StrategyOptimized || s == StrategySinglePass
}

// SearchConfig bounds the price search.
type SearchConfig struct {
	MinPrice         int64
	MaxPrice         int64
	MaxIterations    int
	Tolerance        int64
	LMIStep          decimal.Decimal
	MaxLVR           decimal.Decimal
	MaxLVRWithoutLMI decimal.Decimal
	Strategy         Strategy
}

// DefaultSearchConfig searches $100,000 - $10,000,000 to within $1,000.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MinPrice:         100000,
		MaxPrice:         10000000,
		MaxIterations:    50,
		Tolerance:        1000,
		LMIStep:          decimal.RequireFromString("0.1"),
		MaxLVR:           decimal.RequireFromString("0.90"),
		MaxLVRWithoutLMI: decimal.RequireFromString("0.95"),
		Strategy:         StrategyOptimized,
	}
}

func (c SearchConfig) Validate() error {
	if c.MinPrice <= 0 {
		return fmt.Errorf("search min price must be greater than 0")
	}
	if c.MaxPrice <= c.MinPrice {
		return fmt.Errorf("search max price must be greater than min price")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("search iterations must be greater than 0")
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("search tolerance must be greater than 0")
	}
	if !c.LMIStep.IsPositive() {
		return fmt.Errorf("LMI step must be greater than 0")
	}
	if !c.MaxLVR.IsPositive() || !c.MaxLVRWithoutLMI.IsPositive() {
		return fmt.Errorf("maximum LVR must be greater than 0")
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: %q", customError.ErrUnsupportedStrategy, c.Strategy)
	}
	return nil
}

// Constraints records which feasibility checks a candidate passed.
type Constraints struct {
	// DepositCovered: savings + LMI cover >= required deposit.
	DepositCovered bool `json:"deposit_covered"`
	// FundsSufficient: savings + LMI cover + borrowing capacity covers price,
	// duty, charges and LMI premium.
	FundsSufficient bool `json:"funds_sufficient"`
	// PremiumCashFunded: savings alone pay the deposit shortfall and premium.
	PremiumCashFunded bool `json:"premium_cash_funded"`
	// WithinMaxLVR: total borrowed stays under the LVR cap.
	WithinMaxLVR bool `json:"within_max_lvr"`
}

func (c Constraints) All() bool {
	return c.DepositCovered && c.FundsSufficient && c.PremiumCashFunded && c.WithinMaxLVR
}

// Candidate is the full breakdown of one price tried during the search.
type Candidate struct {
	PropertyPrice   int64
	LMILevelPercent float64
	RequiredDeposit int64
	LMICoverage     int64
	LMIPremium      int64
	Duty            domain.DutyResult
	LVRPercent      float64
	MaxLVR          decimal.Decimal
	Allocation      Allocation
	Constraints     Constraints
}

func (c Candidate) Feasible() bool {
	return c.Constraints.All()
}

// TotalCost is everything the purchase costs up front.
func (c Candidate) TotalCost() int64 {
	return c.PropertyPrice + c.Duty.StampDuty + c.Duty.ForeignSurcharge + c.LMIPremium
}

// Engine finds the most expensive property a buyer can afford.
type Engine struct {
	cfg SearchConfig
}

func NewEngine(cfg SearchConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) Config() SearchConfig {
	return e.cfg
}

func (e *Engine) maxLVR(lmiLevel float64) decimal.Decimal {
	if e.cfg.Strategy == StrategyOptimized && lmiLevel == 0 {
		return e.cfg.MaxLVRWithoutLMI
	}
	return e.cfg.MaxLVR
}

// Evaluate prices one candidate purchase at the given LMI contribution level.
// The input is assumed valid.
func (e *Engine) Evaluate(in domain.AffordabilityInput, price int64, lmiLevel float64) Candidate {
	c := Candidate{
		PropertyPrice:   price,
		LMILevelPercent: lmiLevel,
		MaxLVR:          e.maxLVR(lmiLevel),
		RequiredDeposit: utils.PercentOf(price, in.DepositPercent),
	}

	coverage := utils.MinInt64(utils.PercentOf(price, lmiLevel), c.RequiredDeposit)
	loan := price - c.RequiredDeposit + coverage
	c.LVRPercent = float64(loan) / float64(price) * 100

	// The band comes from the nominal LVR. The rounded one jitters across
	// band edges from one dollar to the next.
	premium := ComputePremium(loan, nominalLVR(in.DepositPercent, lmiLevel), in.BuyerType)

	// LMI is only taken when the cover it buys pays for itself.
	if premium <= coverage {
		c.LMICoverage = coverage
		c.LMIPremium = premium
	} else {
		c.LMILevelPercent = 0
	}

	c.Duty = ComputeDuty(price, in.Jurisdiction, in.BuyerType)

	obligations := Obligations{
		PropertyPrice:   price,
		RequiredDeposit: c.RequiredDeposit,
		LMICoverage:     c.LMICoverage,
		LMIPremium:      c.LMIPremium,
		StampDuty:       c.Duty.StampDuty,
		Charges:         c.Duty.ForeignSurcharge,
	}
	c.Allocation = Allocate(in.MoneySavedUp, obligations)

	maxLoan := decimal.NewFromInt(price).Mul(c.MaxLVR)
	c.Constraints = Constraints{
		DepositCovered:    in.MoneySavedUp+c.LMICoverage >= c.RequiredDeposit,
		FundsSufficient:   in.MoneySavedUp+c.LMICoverage+in.BorrowingCapacity >= c.TotalCost(),
		PremiumCashFunded: in.MoneySavedUp >= obligations.DepositShortfall()+c.LMIPremium && c.Allocation.PremiumShortfall == 0,
		WithinMaxLVR:      decimal.NewFromInt(c.Allocation.Borrowing.Total()).LessThanOrEqual(maxLoan),
	}

	return c
}

// nominalLVR is 100 - deposit + min(level, deposit), the LVR before any
// dollar rounding.
func nominalLVR(depositPercent, lmiLevel float64) float64 {
	deposit := decimal.NewFromFloat(depositPercent)
	cover := decimal.Min(decimal.NewFromFloat(lmiLevel), deposit)
	return decimal.NewFromInt(100).Sub(deposit).Add(cover).InexactFloat64()
}

// searchPrice binary searches the price range at one LMI level.
func (e *Engine) searchPrice(in domain.AffordabilityInput, lmiLevel float64) (Candidate, bool) {
	low, high := e.cfg.MinPrice, e.cfg.MaxPrice

	var best Candidate
	found := false
	for i := 0; i < e.cfg.MaxIterations; i++ {
		price := low + (high-low)/2

		candidate := e.Evaluate(in, price, lmiLevel)
		if candidate.Feasible() {
			best = candidate
			found = true
			low = price + 1
		} else {
			high = price - 1
		}

		if high-low < e.cfg.Tolerance {
			break
		}
	}

	return best, found
}

// LMILevels lists the LMI contribution levels the engine will try for a
// requested cap.
func (e *Engine) LMILevels(capPercent float64) []float64 {
	if e.cfg.Strategy == StrategySinglePass {
		return []float64{capPercent}
	}

	limit := decimal.NewFromFloat(capPercent)
	levels := []float64{}
	for level := decimal.Zero; level.LessThanOrEqual(limit); level = level.Add(e.cfg.LMIStep) {
		levels = append(levels, level.InexactFloat64())
	}
	if levels[len(levels)-1] < capPercent {
		levels = append(levels, capPercent)
	}
	return levels
}

// FindMaxAffordable returns the highest feasible purchase for in, or a
// not-affordable result when no price in the search range works. Only an
// invalid input is an error.
func (e *Engine) FindMaxAffordable(in domain.AffordabilityInput) (domain.AffordabilityResult, error) {
	if err := in.Validate(); err != nil {
		return domain.AffordabilityResult{}, err
	}

	var best Candidate
	found := false
	for _, level := range e.LMILevels(in.LMICoveragePercent) {
		candidate, ok := e.searchPrice(in, level)
		if ok && (!found || candidate.PropertyPrice > best.PropertyPrice) {
			best = candidate
			found = true
		}
	}

	if !found {
		return domain.NotAffordable(), nil
	}
	return e.assemble(in, best), nil
}

func (e *Engine) assemble(in domain.AffordabilityInput, c Candidate) domain.AffordabilityResult {
	savings := c.Allocation.Savings
	borrowing := c.Allocation.Borrowing
	totalBorrowed := borrowing.Total()

	exemptions := make([]string, len(c.Duty.Exemptions))
	copy(exemptions, c.Duty.Exemptions)

	return domain.AffordabilityResult{
		Affordable:              true,
		MaxPropertyPrice:        c.PropertyPrice,
		LMIContributionPercent:  c.LMILevelPercent,
		RequiredDeposit:         c.RequiredDeposit,
		LMIPremium:              c.LMIPremium,
		LMICoverage:             c.LMICoverage,
		StampDuty:               c.Duty.StampDuty,
		ForeignSurcharge:        c.Duty.ForeignSurcharge,
		Exemptions:              exemptions,
		TotalPropertyCost:       c.TotalCost(),
		DepositFromSavings:      savings.Deposit,
		LMIContribution:         c.LMICoverage,
		Savings:                 savings,
		TotalSavingsUsed:        savings.Used(),
		RemainingSavings:        savings.Unallocated,
		Borrowing:               borrowing,
		TotalBorrowed:           totalBorrowed,
		UnusedBorrowingCapacity: utils.MaxInt64(0, in.BorrowingCapacity-totalBorrowed),
		LVRPercent:              c.LVRPercent,
		MonthlyRepayment:        MonthlyRepayment(totalBorrowed, in.AnnualInterestRatePercent, in.RepaymentPeriodYears, in.RepaymentType),
	}
}
