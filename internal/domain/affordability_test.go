package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customError "github.com/segyhp/affordability-engine/pkg/errors"
)

func validInput() AffordabilityInput {
	return AffordabilityInput{
		BorrowingCapacity:           600000,
		MoneySavedUp:                100000,
		DepositPercent:              10,
		LMICoveragePercent:          2,
		RepaymentPeriodYears:        30,
		AnnualInterestRatePercent:   6.35,
		PropertyAppreciationPercent: 2,
		RepaymentType:               RepaymentPrincipalInterest,
		Jurisdiction:                JurisdictionNSW,
		BuyerType:                   BuyerOwnerOccupier,
	}
}

func TestAffordabilityInput_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*AffordabilityInput)
		expectedField string
	}{
		{name: "valid input", mutate: func(in *AffordabilityInput) {}},
		{name: "zero percentages are allowed", mutate: func(in *AffordabilityInput) {
			in.DepositPercent = 0
			in.LMICoveragePercent = 0
			in.AnnualInterestRatePercent = 0
			in.PropertyAppreciationPercent = 0
		}},
		{name: "upper bounds are allowed", mutate: func(in *AffordabilityInput) {
			in.BorrowingCapacity = 1000000000000
			in.MoneySavedUp = 1000000000000
			in.DepositPercent = 100
			in.LMICoveragePercent = 10
			in.RepaymentPeriodYears = 50
			in.AnnualInterestRatePercent = 20
			in.PropertyAppreciationPercent = 15
		}},
		{name: "non-positive borrowing capacity", mutate: func(in *AffordabilityInput) { in.BorrowingCapacity = 0 }, expectedField: "borrowing_capacity"},
		{name: "borrowing capacity near int64 max", mutate: func(in *AffordabilityInput) { in.BorrowingCapacity = math.MaxInt64 - 10 }, expectedField: "borrowing_capacity"},
		{name: "savings above one trillion", mutate: func(in *AffordabilityInput) { in.MoneySavedUp = 1000000000001 }, expectedField: "money_saved_up"},
		{name: "negative savings", mutate: func(in *AffordabilityInput) { in.MoneySavedUp = -1 }, expectedField: "money_saved_up"},
		{name: "deposit above 100", mutate: func(in *AffordabilityInput) { in.DepositPercent = 100.5 }, expectedField: "deposit_percent"},
		{name: "negative deposit", mutate: func(in *AffordabilityInput) { in.DepositPercent = -1 }, expectedField: "deposit_percent"},
		{name: "lmi coverage above 10", mutate: func(in *AffordabilityInput) { in.LMICoveragePercent = 10.1 }, expectedField: "lmi_coverage_percent"},
		{name: "repayment period zero", mutate: func(in *AffordabilityInput) { in.RepaymentPeriodYears = 0 }, expectedField: "repayment_period_years"},
		{name: "repayment period above 50", mutate: func(in *AffordabilityInput) { in.RepaymentPeriodYears = 51 }, expectedField: "repayment_period_years"},
		{name: "interest rate above 20", mutate: func(in *AffordabilityInput) { in.AnnualInterestRatePercent = 20.01 }, expectedField: "annual_interest_rate_percent"},
		{name: "appreciation above 15", mutate: func(in *AffordabilityInput) { in.PropertyAppreciationPercent = 16 }, expectedField: "property_appreciation_percent"},
		{name: "missing repayment type", mutate: func(in *AffordabilityInput) { in.RepaymentType = "" }, expectedField: "repayment_type"},
		{name: "unknown repayment type", mutate: func(in *AffordabilityInput) { in.RepaymentType = "balloon" }, expectedField: "repayment_type"},
		{name: "missing jurisdiction", mutate: func(in *AffordabilityInput) { in.Jurisdiction = "" }, expectedField: "jurisdiction"},
		{name: "unknown jurisdiction", mutate: func(in *AffordabilityInput) { in.Jurisdiction = "XYZ" }, expectedField: "jurisdiction"},
		{name: "unknown buyer type", mutate: func(in *AffordabilityInput) { in.BuyerType = "alien" }, expectedField: "buyer_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var be *customError.BusinessError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, customError.ErrCodeValidation, be.Code)
			assert.Equal(t, tt.expectedField, be.Field)
			assert.True(t, errors.Is(err, customError.ErrInvalidInput))
		})
	}
}

func TestEnums(t *testing.T) {
	for _, j := range Jurisdictions {
		assert.True(t, j.Valid(), string(j))
		assert.NotEqual(t, string(j), j.Name())
	}
	assert.False(t, Jurisdiction("XYZ").Valid())
	assert.Equal(t, "New South Wales", JurisdictionNSW.Name())

	assert.True(t, BuyerInvestor.Valid())
	assert.False(t, BuyerType("").Valid())
	assert.Equal(t, "First Home Buyer", BuyerFirstHome.Name())

	assert.True(t, RepaymentInterestOnly.Valid())
	assert.False(t, RepaymentType("balloon").Valid())
}

func TestAllocations(t *testing.T) {
	s := SavingsAllocation{LMIPremium: 1000, Deposit: 50000, StampDuty: 20000, Charges: 0, Property: 5000, Unallocated: 200}
	assert.Equal(t, int64(76000), s.Used())

	b := BorrowingAllocation{Property: 500000, StampDuty: 3000, Charges: 100}
	assert.Equal(t, int64(503100), b.Total())

	r := AffordabilityResult{Borrowing: b, LMIContribution: 12000}
	assert.Equal(t, int64(512000), r.MortgageBalance())
}

func TestNotAffordable(t *testing.T) {
	r := NotAffordable()
	assert.False(t, r.Affordable)
	assert.Zero(t, r.MaxPropertyPrice)
	assert.NotNil(t, r.Exemptions)
	assert.Empty(t, r.Exemptions)
}

func TestDutyResult_Total(t *testing.T) {
	assert.Equal(t, int64(120208), DutyResult{StampDuty: 40208, ForeignSurcharge: 80000}.Total())
}
