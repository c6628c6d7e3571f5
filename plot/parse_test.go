package plot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergmee/plot"
)

func TestParse_BasicStream(t *testing.T) {
	text := "t Arc Reciprocity AcceptanceRate\n" +
		"0 -1.000000 0.000000 0.000000\n" +
		"1 -1.200000 0.100000 0.350000\n"

	s, err := plot.Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, []string{"Arc", "Reciprocity", "AcceptanceRate"}, s.Columns)
	require.Equal(t, []int{0, 1}, s.T)
	require.Equal(t, []float64{-1.0, -1.2}, s.Values["Arc"])
	require.Equal(t, []float64{0.0, 0.1}, s.Values["Reciprocity"])
}

func TestParse_EmptyStream(t *testing.T) {
	_, err := plot.Parse(strings.NewReader("t Arc AcceptanceRate\n"))
	require.ErrorIs(t, err, plot.ErrEmptyStream)
}

func TestParse_MalformedRow(t *testing.T) {
	text := "t Arc AcceptanceRate\n0 -1.0\n"
	_, err := plot.Parse(strings.NewReader(text))
	require.ErrorIs(t, err, plot.ErrMalformedStream)
}
