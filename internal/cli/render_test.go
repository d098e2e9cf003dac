package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segyhp/affordability-engine/internal/report"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Duty",
		Headers: []string{"State", "Amount"},
		Rows: [][]string{
			{"NSW", "$25,621"},
			{"---"},
			{"VIC", "$1"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "Duty")
	assert.True(t, strings.HasPrefix(lines[1], "╭"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "╰"))
	assert.Contains(t, out, "│ NSW   │ $25,621 │")
	// Numeric columns are right aligned
	assert.Contains(t, out, "│ VIC   │      $1 │")
	assert.Len(t, lines, 8)
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderReport(t *testing.T) {
	rep := report.Report{
		Affordable: true,
		Headline:   "Maximum property price in New South Wales: $675,847",
		Sections: []report.Section{{
			Title: report.TitleSummary,
			Lines: []report.Line{{Label: "Stamp duty", Value: "$25,621"}},
		}},
		Equity: []report.EquityRow{{Year: "0", PropertyValue: "$675,847", LoanBalance: "$613,033", Equity: "$62,814"}},
		Notes:  []string{"Owner occupier purchasing in New South Wales"},
	}

	out := RenderReport(rep)

	assert.Contains(t, out, "$675,847")
	assert.Contains(t, out, report.TitleSummary)
	assert.Contains(t, out, "Stamp duty")
	assert.Contains(t, out, "Equity Projection")
	assert.Contains(t, out, "$62,814")
	assert.Contains(t, out, "purchasing in New South Wales")
}

func TestRenderReport_NotAffordable(t *testing.T) {
	out := RenderReport(report.Report{Headline: "Nothing fits"})

	assert.Contains(t, out, "Nothing fits")
	assert.Contains(t, out, "Not affordable")
	assert.NotContains(t, out, "Equity Projection")
}
