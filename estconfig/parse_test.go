package estconfig_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ergmee/estconfig"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := estconfig.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 1e-9, cfg.ACAEE)
	require.Equal(t, 1e-2, cfg.CompC)
	require.Equal(t, 0.1, cfg.IfdK)
	require.Equal(t, 0.1, cfg.MuFloor)
	require.Equal(t, 1e-10, cfg.SigmaFloor)
}

func TestParse_ScalarsAndComments(t *testing.T) {
	input := `
# this is a comment
SamplerSteps = 100
Ssteps = 50
EEsteps = 20
EEinnerSteps = 30
useIFDsampler = true
forbidReciprocity = FALSE
ifd_K = 0.25
arclistFile = /data/net.paj
`
	cfg, err := estconfig.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 100, cfg.SamplerSteps)
	require.Equal(t, 50, cfg.SSteps)
	require.Equal(t, 20, cfg.EESteps)
	require.Equal(t, 30, cfg.EEInnerSteps)
	require.True(t, cfg.UseIFDSampler)
	require.False(t, cfg.ForbidReciprocity)
	require.Equal(t, 0.25, cfg.IfdK)
	require.Equal(t, "/data/net.paj", cfg.ArclistFile)
}

func TestParse_EffectSets(t *testing.T) {
	input := `structParams = {Arc, Reciprocity, AltKTriangle(2.0)}
attrParams = {Sender(income), Match(faction)}
dyadicParams = {GeoDistance(lat,long)}
`
	cfg, err := estconfig.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, cfg.StructParams, 3)
	require.Equal(t, "Arc", cfg.StructParams[0].Name)
	require.Equal(t, "AltKTriangle", cfg.StructParams[2].Name)
	require.Equal(t, []string{"2.0"}, cfg.StructParams[2].Args)

	require.Len(t, cfg.AttrParams, 2)
	require.Equal(t, "Sender", cfg.AttrParams[0].Name)
	require.Equal(t, []string{"income"}, cfg.AttrParams[0].Args)

	require.Len(t, cfg.DyadicParams, 1)
	require.Equal(t, "GeoDistance", cfg.DyadicParams[0].Name)
	require.Equal(t, []string{"lat", "long"}, cfg.DyadicParams[0].Args)
}

func TestParse_UnknownKeyIsSyntaxError(t *testing.T) {
	_, err := estconfig.Parse(strings.NewReader("notARealKey = 5\n"))
	require.Error(t, err)
	var syn *estconfig.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, 1, syn.Line)
}

func TestParse_BadBoolIsSyntaxError(t *testing.T) {
	_, err := estconfig.Parse(strings.NewReader("forbidReciprocity = maybe\n"))
	require.Error(t, err)
	var syn *estconfig.SyntaxError
	require.ErrorAs(t, err, &syn)
}

func TestParse_IFDWithArcIsSemanticError(t *testing.T) {
	input := `useIFDsampler = true
structParams = {Arc, Reciprocity}
`
	_, err := estconfig.Parse(strings.NewReader(input))
	require.Error(t, err)
	var sem *estconfig.SemanticError
	require.ErrorAs(t, err, &sem)
}

func TestParse_IFDWithoutArcIsFine(t *testing.T) {
	input := `useIFDsampler = true
structParams = {Reciprocity}
`
	cfg, err := estconfig.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.True(t, cfg.UseIFDSampler)
}
