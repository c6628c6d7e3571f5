package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteConfig_WritesExpectedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.txt")

	a := &WizardAnswers{
		ArclistFile:   "g.net",
		StructEffects: "{Arc}",
		ACAS:          "1.0",
		ACAEE:         "1e-6",
		SamplerSteps:  "1000",
		SSteps:        "10",
		EESteps:       "20",
		ThetaPrefix:   "theta",
		DzAPrefix:     "dzA",
	}
	require.NoError(t, WriteConfig(path, a))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "arclistFile = g.net")
	require.Contains(t, text, "structParams = {Arc}")
	require.Contains(t, text, "useIFDsampler = false")
	require.NotContains(t, text, "attrParams")
}

func TestWriteConfig_IncludesOptionalFilesAndEffects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.txt")

	a := &WizardAnswers{
		ArclistFile:   "g.net",
		ContattrFile:  "age.txt",
		StructEffects: "{Reciprocity}",
		AttrEffects:   "{Sender(age)}",
		UseIFD:        true,
		ACAS:          "1.0",
		ACAEE:         "1e-6",
		SamplerSteps:  "1000",
		SSteps:        "10",
		EESteps:       "20",
		ThetaPrefix:   "theta",
		DzAPrefix:     "dzA",
	}
	require.NoError(t, WriteConfig(path, a))

	text, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(text), "contattrFile = age.txt")
	require.Contains(t, string(text), "attrParams = {Sender(age)}")
	require.Contains(t, string(text), "useIFDsampler = true")
}

func TestValidateNumbers_RejectsNonNumericACA(t *testing.T) {
	a := &WizardAnswers{ACAS: "not-a-number", ACAEE: "1e-6", SamplerSteps: "1", SSteps: "1", EESteps: "1"}
	require.Error(t, validateNumbers(a))
}
