// File: wizard.go
// Role: `ergmee init`, an interactive config-builder wizard producing an
// estconfig-compatible key = value file (spec §6) — the human-facing
// counterpart to hand-writing one, grounded in
// vanderheijden86-beadwork's pkg/export/wizard.go huh-form flow.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardAnswers holds everything RunInitWizard collects.
type WizardAnswers struct {
	ArclistFile  string
	ContattrFile string
	CatattrFile  string
	BinattrFile  string
	ZoneFile     string

	StructEffects string // raw "{Arc, Reciprocity}"-style text
	AttrEffects   string
	DyadicEffects string

	UseIFD       bool
	ACAS         string
	ACAEE        string
	SamplerSteps string
	SSteps       string
	EESteps      string

	ThetaPrefix string
	DzAPrefix   string
}

// RunInitWizard prompts for the fields estconfig.Parse needs and returns
// the collected answers; the caller (cmd/ergmee) turns them into a file
// via WriteConfig.
func RunInitWizard() (*WizardAnswers, error) {
	a := &WizardAnswers{
		StructEffects: "{Arc}",
		ACAS:          "1.0",
		ACAEE:         "1e-6",
		SamplerSteps:  "1000",
		SSteps:        "10",
		EESteps:       "20",
		ThetaPrefix:   "theta",
		DzAPrefix:     "dzA",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Graph file (Pajek arc list)").Value(&a.ArclistFile),
			huh.NewInput().Title("Continuous attribute file (optional)").Value(&a.ContattrFile),
			huh.NewInput().Title("Categorical attribute file (optional)").Value(&a.CatattrFile),
			huh.NewInput().Title("Binary attribute file (optional)").Value(&a.BinattrFile),
			huh.NewInput().Title("Zone file for snowball sampling (optional)").Value(&a.ZoneFile),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use the IFD (fixed-density) sampler?").
				Description("IFD replaces the Arc effect with an auxiliary parameter").
				Value(&a.UseIFD),
			huh.NewInput().Title("Structural effects").Description(`e.g. "{Arc}" or "{Reciprocity, AltKTwoPath}"`).Value(&a.StructEffects),
			huh.NewInput().Title("Attribute effects (optional)").Description(`e.g. "{Sender(age)}"`).Value(&a.AttrEffects),
			huh.NewInput().Title("Dyadic effects (optional)").Description(`e.g. "{EdgeCov(weight)}"`).Value(&a.DyadicEffects),
		),
		huh.NewGroup(
			huh.NewInput().Title("ACA_S").Value(&a.ACAS),
			huh.NewInput().Title("ACA_EE").Value(&a.ACAEE),
			huh.NewInput().Title("samplerSteps").Value(&a.SamplerSteps),
			huh.NewInput().Title("Ssteps").Value(&a.SSteps),
			huh.NewInput().Title("EEsteps").Value(&a.EESteps),
		),
		huh.NewGroup(
			huh.NewInput().Title("theta output prefix").Value(&a.ThetaPrefix),
			huh.NewInput().Title("dzA output prefix").Value(&a.DzAPrefix),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("tui: running init wizard: %w", err)
	}
	if err := validateNumbers(a); err != nil {
		return nil, err
	}

	return a, nil
}

func validateNumbers(a *WizardAnswers) error {
	fields := map[string]string{
		"ACA_S": a.ACAS, "ACA_EE": a.ACAEE,
	}
	for name, v := range fields {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("tui: %s must be a number, got %q", name, v)
		}
	}
	ints := map[string]string{
		"samplerSteps": a.SamplerSteps, "Ssteps": a.SSteps, "EEsteps": a.EESteps,
	}
	for name, v := range ints {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("tui: %s must be an integer, got %q", name, v)
		}
	}

	return nil
}

// WriteConfig writes a as an estconfig `key = value` file to path.
func WriteConfig(path string, a *WizardAnswers) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# generated by ergmee init\n")
	fmt.Fprintf(&b, "arclistFile = %s\n", a.ArclistFile)
	writeOptionalFile(&b, "contattrFile", a.ContattrFile)
	writeOptionalFile(&b, "catattrFile", a.CatattrFile)
	writeOptionalFile(&b, "binattrFile", a.BinattrFile)
	writeOptionalFile(&b, "zoneFile", a.ZoneFile)

	fmt.Fprintf(&b, "useIFDsampler = %t\n", a.UseIFD)
	fmt.Fprintf(&b, "structParams = %s\n", nonEmptyOr(a.StructEffects, "{}"))
	if strings.TrimSpace(a.AttrEffects) != "" {
		fmt.Fprintf(&b, "attrParams = %s\n", a.AttrEffects)
	}
	if strings.TrimSpace(a.DyadicEffects) != "" {
		fmt.Fprintf(&b, "dyadicParams = %s\n", a.DyadicEffects)
	}

	fmt.Fprintf(&b, "ACA_S = %s\n", a.ACAS)
	fmt.Fprintf(&b, "ACA_EE = %s\n", a.ACAEE)
	fmt.Fprintf(&b, "samplerSteps = %s\n", a.SamplerSteps)
	fmt.Fprintf(&b, "Ssteps = %s\n", a.SSteps)
	fmt.Fprintf(&b, "EEsteps = %s\n", a.EESteps)
	fmt.Fprintf(&b, "thetaFilePrefix = %s\n", a.ThetaPrefix)
	fmt.Fprintf(&b, "dzAFilePrefix = %s\n", a.DzAPrefix)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeOptionalFile(b *strings.Builder, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s = %s\n", key, value)
}

func nonEmptyOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}

	return v
}
