package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/plot"
)

func TestWatchModel_SummaryAfterSeriesMsg(t *testing.T) {
	m := &watchModel{path: "theta_1.txt"}
	series, err := plot.Parse(strings.NewReader("t Arc AcceptanceRate\n0 -1.0 0.0\n1 -1.2 0.4\n"))
	require.NoError(t, err)

	m.last = series
	m.rebuildTable()

	summary := m.Summary()
	require.Contains(t, summary, "Last iteration: **1**")
	require.Contains(t, summary, "| Arc | -1.2 |")
}

func TestWatchModel_SummaryEmptyBeforeAnyRow(t *testing.T) {
	m := &watchModel{path: "theta_1.txt"}
	require.Equal(t, "", m.Summary())
}

func TestRenderSummary_ReturnsNonEmptyOutput(t *testing.T) {
	out := RenderSummary("# hi\n")
	require.NotEmpty(t, out)
}
