package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/segyhp/affordability-engine/internal/domain"
)

// DefaultScenario holds the values used for anything a scenario file or flag
// leaves unset. Capacity and savings have no sensible default and stay zero.
func DefaultScenario() domain.AffordabilityInput {
	return domain.AffordabilityInput{
		DepositPercent:              20,
		LMICoveragePercent:          0,
		RepaymentPeriodYears:        30,
		AnnualInterestRatePercent:   6,
		PropertyAppreciationPercent: 3,
		RepaymentType:               domain.RepaymentPrincipalInterest,
		Jurisdiction:                domain.JurisdictionNSW,
		BuyerType:                   domain.BuyerOwnerOccupier,
	}
}

// LoadScenario decodes a TOML scenario file over DefaultScenario. Unknown
// keys are rejected so a misspelt field is not silently ignored.
func LoadScenario(path string) (domain.AffordabilityInput, error) {
	in := DefaultScenario()

	md, err := toml.DecodeFile(path, &in)
	if err != nil {
		return in, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return in, fmt.Errorf("scenario %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return in, nil
}

// EncodeScenario writes in as TOML, the inverse of LoadScenario.
func EncodeScenario(in domain.AffordabilityInput) (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(in); err != nil {
		return "", err
	}
	return b.String(), nil
}
