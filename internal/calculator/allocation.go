package calculator

import (
	"github.com/segyhp/affordability-engine/internal/domain"
	"github.com/segyhp/affordability-engine/pkg/utils"
)

// Obligations are the amounts a purchase must fund.
type Obligations struct {
	PropertyPrice   int64
	RequiredDeposit int64
	LMICoverage     int64
	LMIPremium      int64
	StampDuty       int64
	Charges         int64
}

// DepositShortfall is the part of the deposit the LMI cover does not meet.
func (o Obligations) DepositShortfall() int64 {
	return utils.MaxInt64(0, o.RequiredDeposit-o.LMICoverage)
}

// Allocation is the result of running savings through the waterfall.
type Allocation struct {
	Savings   domain.SavingsAllocation
	Borrowing domain.BorrowingAllocation
	// PremiumShortfall is LMI premium that savings could not pay. Premiums
	// are never borrowed, so a non-zero shortfall makes the purchase
	// infeasible.
	PremiumShortfall int64
}

// Allocate draws savings in strict priority order: LMI premium, deposit
// shortfall, stamp duty, additional charges. Anything left reduces the
// property borrowing. Whatever savings do not cover is borrowed, except the
// LMI premium.
func Allocate(savings int64, o Obligations) Allocation {
	var a Allocation
	remaining := utils.MaxInt64(0, savings)

	draw := func(need int64) int64 {
		take := utils.MinInt64(remaining, utils.MaxInt64(0, need))
		remaining -= take
		return take
	}

	a.Savings.LMIPremium = draw(o.LMIPremium)
	a.Savings.Deposit = draw(o.DepositShortfall())
	a.Savings.StampDuty = draw(o.StampDuty)
	a.Savings.Charges = draw(o.Charges)

	propertyOutstanding := utils.MaxInt64(0, o.PropertyPrice-a.Savings.Deposit-o.LMICoverage)
	a.Savings.Property = draw(propertyOutstanding)
	a.Savings.Unallocated = remaining

	a.Borrowing.Property = propertyOutstanding - a.Savings.Property
	a.Borrowing.StampDuty = o.StampDuty - a.Savings.StampDuty
	a.Borrowing.Charges = o.Charges - a.Savings.Charges
	a.PremiumShortfall = o.LMIPremium - a.Savings.LMIPremium

	return a
}
