package domain

// Jurisdiction is an Australian state or territory that levies transfer duty.
type Jurisdiction string

const (
	JurisdictionNSW Jurisdiction = "NSW"
	JurisdictionVIC Jurisdiction = "VIC"
	JurisdictionQLD Jurisdiction = "QLD"
	JurisdictionWA  Jurisdiction = "WA"
	JurisdictionSA  Jurisdiction = "SA"
	JurisdictionTAS Jurisdiction = "TAS"
	JurisdictionACT Jurisdiction = "ACT"
	JurisdictionNT  Jurisdiction = "NT"
)

// Jurisdictions lists every supported jurisdiction in display order.
var Jurisdictions = []Jurisdiction{
	JurisdictionNSW,
	JurisdictionVIC,
	JurisdictionQLD,
	JurisdictionWA,
	JurisdictionSA,
	JurisdictionTAS,
	JurisdictionACT,
	JurisdictionNT,
}

func (j Jurisdiction) Valid() bool {
	switch j {
	case JurisdictionNSW, JurisdictionVIC, JurisdictionQLD, JurisdictionWA,
		JurisdictionSA, JurisdictionTAS, JurisdictionACT, JurisdictionNT:
		return true
	}
	return false
}

// Name returns the full jurisdiction name.
func (j Jurisdiction) Name() string {
	switch j {
	case JurisdictionNSW:
		return "New South Wales"
	case JurisdictionVIC:
		return "Victoria"
	case JurisdictionQLD:
		return "Queensland"
	case JurisdictionWA:
		return "Western Australia"
	case JurisdictionSA:
		return "South Australia"
	case JurisdictionTAS:
		return "Tasmania"
	case JurisdictionACT:
		return "Australian Capital Territory"
	case JurisdictionNT:
		return "Northern Territory"
	}
	return string(j)
}

// BuyerType classifies the purchaser for duty and LMI purposes.
type BuyerType string

const (
	BuyerFirstHome     BuyerType = "first-home"
	BuyerOwnerOccupier BuyerType = "owner-occupier"
	BuyerInvestor      BuyerType = "investor"
	BuyerForeign       BuyerType = "foreign"
)

func (b BuyerType) Valid() bool {
	switch b {
	case BuyerFirstHome, BuyerOwnerOccupier, BuyerInvestor, BuyerForeign:
		return true
	}
	return false
}

func (b BuyerType) Name() string {
	switch b {
	case BuyerFirstHome:
		return "First Home Buyer"
	case BuyerOwnerOccupier:
		return "Owner Occupier"
	case BuyerInvestor:
		return "Investor"
	case BuyerForeign:
		return "Foreign Buyer"
	}
	return string(b)
}

// RepaymentType selects how the loan is repaid.
type RepaymentType string

const (
	RepaymentPrincipalInterest RepaymentType = "principal-interest"
	RepaymentInterestOnly      RepaymentType = "interest-only"
)

func (r RepaymentType) Valid() bool {
	return r == RepaymentPrincipalInterest || r == RepaymentInterestOnly
}

func (r RepaymentType) Name() string {
	switch r {
	case RepaymentPrincipalInterest:
		return "Principal & Interest"
	case RepaymentInterestOnly:
		return "Interest Only"
	}
	return string(r)
}
