package domain

// AffordabilityInput is one buyer scenario. Money fields are whole dollars
// up to one trillion.
type AffordabilityInput struct {
	BorrowingCapacity           int64         `json:"borrowing_capacity" toml:"borrowing_capacity" validate:"gt=0,lte=1000000000000"`
	MoneySavedUp                int64         `json:"money_saved_up" toml:"money_saved_up" validate:"gt=0,lte=1000000000000"`
	DepositPercent              float64       `json:"deposit_percent" toml:"deposit_percent" validate:"gte=0,lte=100"`
	LMICoveragePercent          float64       `json:"lmi_coverage_percent" toml:"lmi_coverage_percent" validate:"gte=0,lte=10"`
	RepaymentPeriodYears        int           `json:"repayment_period_years" toml:"repayment_period_years" validate:"gte=1,lte=50"`
	AnnualInterestRatePercent   float64       `json:"annual_interest_rate_percent" toml:"annual_interest_rate_percent" validate:"gte=0,lte=20"`
	PropertyAppreciationPercent float64       `json:"property_appreciation_percent" toml:"property_appreciation_percent" validate:"gte=0,lte=15"`
	RepaymentType               RepaymentType `json:"repayment_type" toml:"repayment_type" validate:"required,oneof=principal-interest interest-only"`
	Jurisdiction                Jurisdiction  `json:"jurisdiction" toml:"jurisdiction" validate:"required,oneof=NSW VIC QLD WA SA TAS ACT NT"`
	BuyerType                   BuyerType     `json:"buyer_type" toml:"buyer_type" validate:"required,oneof=first-home owner-occupier investor foreign"`
}

// Validate checks every field range and enum before any computation runs.
func (in AffordabilityInput) Validate() error {
	return Validate(in)
}

// DutyResult is the transfer duty owed on one purchase.
type DutyResult struct {
	StampDuty        int64    `json:"stamp_duty"`
	Exemptions       []string `json:"exemptions"`
	ForeignSurcharge int64    `json:"foreign_surcharge"`
}

// Total returns duty plus any foreign surcharge.
func (d DutyResult) Total() int64 {
	return d.StampDuty + d.ForeignSurcharge
}

// SavingsAllocation is how cash savings were spent, by bucket.
type SavingsAllocation struct {
	LMIPremium  int64 `json:"lmi_premium"`
	Deposit     int64 `json:"deposit"`
	StampDuty   int64 `json:"stamp_duty"`
	Charges     int64 `json:"charges"`
	Property    int64 `json:"property"`
	Unallocated int64 `json:"unallocated"`
}

// Used is the savings actually drawn.
func (s SavingsAllocation) Used() int64 {
	return s.LMIPremium + s.Deposit + s.StampDuty + s.Charges + s.Property
}

// BorrowingAllocation is what had to be borrowed, by bucket. LMIPremium is
// always zero on a feasible candidate.
type BorrowingAllocation struct {
	Property   int64 `json:"property"`
	StampDuty  int64 `json:"stamp_duty"`
	Charges    int64 `json:"charges"`
	LMIPremium int64 `json:"lmi_premium"`
}

func (b BorrowingAllocation) Total() int64 {
	return b.Property + b.StampDuty + b.Charges + b.LMIPremium
}

// AffordabilityResult is the best feasible purchase found for an input.
// When Affordable is false every money field is zero.
type AffordabilityResult struct {
	Affordable              bool                `json:"affordable"`
	MaxPropertyPrice        int64               `json:"max_property_price"`
	LMIContributionPercent  float64             `json:"lmi_contribution_percent"`
	RequiredDeposit         int64               `json:"required_deposit"`
	LMIPremium              int64               `json:"lmi_premium"`
	LMICoverage             int64               `json:"lmi_coverage"`
	StampDuty               int64               `json:"stamp_duty"`
	ForeignSurcharge        int64               `json:"foreign_surcharge"`
	Exemptions              []string            `json:"exemptions"`
	TotalPropertyCost       int64               `json:"total_property_cost"`
	DepositFromSavings      int64               `json:"deposit_from_savings"`
	LMIContribution         int64               `json:"lmi_contribution"`
	Savings                 SavingsAllocation   `json:"savings"`
	TotalSavingsUsed        int64               `json:"total_savings_used"`
	RemainingSavings        int64               `json:"remaining_savings"`
	Borrowing               BorrowingAllocation `json:"borrowing"`
	TotalBorrowed           int64               `json:"total_borrowed"`
	UnusedBorrowingCapacity int64               `json:"unused_borrowing_capacity"`
	LVRPercent              float64             `json:"lvr_percent"`
	MonthlyRepayment        int64               `json:"monthly_repayment"`
}

// NotAffordable is the all-zero result returned when no price in the search
// range is feasible.
func NotAffordable() AffordabilityResult {
	return AffordabilityResult{Exemptions: []string{}}
}

// MortgageBalance is the opening balance secured against the property: the
// property borrowing plus the amount the LMI cover lets the lender advance.
func (r AffordabilityResult) MortgageBalance() int64 {
	return r.Borrowing.Property + r.LMIContribution
}

// EquityYearPoint is one row of the equity projection.
type EquityYearPoint struct {
	Year                    int   `json:"year"`
	LoanBalance             int64 `json:"loan_balance"`
	Equity                  int64 `json:"equity"`
	PropertyValue           int64 `json:"property_value"`
	PrincipalPaidCumulative int64 `json:"principal_paid"`
	AppreciationCumulative  int64 `json:"appreciation"`
}
