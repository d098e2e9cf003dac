package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/affordability-engine/internal/domain"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadScenario_FillsDefaults(t *testing.T) {
	path := writeScenario(t, `
borrowing_capacity = 600000
money_saved_up = 100000
deposit_percent = 10
lmi_coverage_percent = 2
jurisdiction = "VIC"
buyer_type = "first-home"
`)

	in, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, int64(600000), in.BorrowingCapacity)
	assert.Equal(t, int64(100000), in.MoneySavedUp)
	assert.Equal(t, 10.0, in.DepositPercent)
	assert.Equal(t, 2.0, in.LMICoveragePercent)
	assert.Equal(t, domain.JurisdictionVIC, in.Jurisdiction)
	assert.Equal(t, domain.BuyerFirstHome, in.BuyerType)

	// Not in the file
	assert.Equal(t, 30, in.RepaymentPeriodYears)
	assert.Equal(t, domain.RepaymentPrincipalInterest, in.RepaymentType)
	require.NoError(t, in.Validate())
}

func TestLoadScenario_UnknownKeys(t *testing.T) {
	path := writeScenario(t, "borowing_capacity = 600000\nmoney_saved_up = 1\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "borowing_capacity")
}

func TestLoadScenario_Malformed(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, "borrowing_capacity = \n"))
	assert.Error(t, err)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEncodeScenario_LoadsBack(t *testing.T) {
	in := DefaultScenario()
	in.BorrowingCapacity = 750000
	in.MoneySavedUp = 120000
	in.Jurisdiction = domain.JurisdictionQLD

	body, err := EncodeScenario(in)
	require.NoError(t, err)
	assert.Contains(t, body, `jurisdiction = "QLD"`)

	loaded, err := LoadScenario(writeScenario(t, body))
	require.NoError(t, err)
	assert.Equal(t, in, loaded)
}
