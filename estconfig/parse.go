// File: parse.go
// Role: the key=value config scanner (spec §6).
package estconfig

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads a config file per spec §6 and returns a validated Config.
// Unknown keys and unparsable scalar values are SyntaxErrors; listing Arc
// among structParams while useIFDsampler is true is a SemanticError
// (spec §4.4/§7) — it is the one semantic check decidable from the text
// alone, so Parse performs it directly rather than deferring everything
// to the driver.
func Parse(r io.Reader) (*Config, error) {
	cfg := defaultConfig()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, &SyntaxError{Line: lineNo, Msg: "missing '=' in key = value line"}
		}
		key := strings.ToLower(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])

		if err := applyKey(cfg, key, value, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := cfg.validateIFDArc(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validateIFDArc() error {
	if !c.UseIFDSampler {
		return nil
	}
	for _, e := range c.StructParams {
		if e.Name == "Arc" {
			return &SemanticError{Msg: "Arc must not be listed in structParams when useIFDsampler is true"}
		}
	}

	return nil
}

// applyKey dispatches one key=value pair into cfg. Scalar keys parse
// directly; set-valued keys (the four *Params keys) go through
// parseEffectList.
func applyKey(cfg *Config, key, value string, line int) error {
	switch key {
	case "aca_s":
		return setFloat(&cfg.ACAS, value, line)
	case "aca_ee":
		return setFloat(&cfg.ACAEE, value, line)
	case "compc":
		return setFloat(&cfg.CompC, value, line)
	case "samplersteps":
		return setInt(&cfg.SamplerSteps, value, line)
	case "ssteps":
		return setInt(&cfg.SSteps, value, line)
	case "eesteps":
		return setInt(&cfg.EESteps, value, line)
	case "eeinnersteps":
		return setInt(&cfg.EEInnerSteps, value, line)
	case "outputallsteps":
		return setBool(&cfg.OutputAllSteps, value, line)
	case "useifdsampler":
		return setBool(&cfg.UseIFDSampler, value, line)
	case "ifd_k":
		return setFloat(&cfg.IfdK, value, line)
	case "outputsimulatednetwork":
		return setBool(&cfg.OutputSimulatedNetwork, value, line)
	case "useconditionalestimation":
		return setBool(&cfg.UseConditionalEstimation, value, line)
	case "forbidreciprocity":
		return setBool(&cfg.ForbidReciprocity, value, line)
	case "arclistfile":
		cfg.ArclistFile = value
	case "binattrfile":
		cfg.BinattrFile = value
	case "catattrfile":
		cfg.CatattrFile = value
	case "contattrfile":
		cfg.ContattrFile = value
	case "setattrfile":
		cfg.SetattrFile = value
	case "zonefile":
		cfg.ZoneFile = value
	case "thetafileprefix":
		cfg.ThetaFilePrefix = value
	case "dzafileprefix":
		cfg.DzAFilePrefix = value
	case "simnetfileprefix":
		cfg.SimNetFilePrefix = value
	case "mufloor":
		return setFloat(&cfg.MuFloor, value, line)
	case "sigmafloor":
		return setFloat(&cfg.SigmaFloor, value, line)
	case "useborisenkoupdate":
		return setBool(&cfg.UseBorisenkoUpdate, value, line)
	case "learningrate":
		return setFloat(&cfg.LearningRate, value, line)
	case "mintheta":
		return setFloat(&cfg.MinTheta, value, line)
	case "structparams":
		refs, err := parseEffectList(value, line)
		if err != nil {
			return err
		}
		cfg.StructParams = refs
	case "attrparams":
		refs, err := parseEffectList(value, line)
		if err != nil {
			return err
		}
		cfg.AttrParams = refs
	case "dyadicparams":
		refs, err := parseEffectList(value, line)
		if err != nil {
			return err
		}
		cfg.DyadicParams = refs
	case "attrinteractionparams":
		refs, err := parseEffectList(value, line)
		if err != nil {
			return err
		}
		cfg.AttrInteractionParams = refs
	default:
		return &SyntaxError{Line: line, Msg: "unknown key " + strconv.Quote(key)}
	}

	return nil
}

func setFloat(dst *float64, value string, line int) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &SyntaxError{Line: line, Msg: "expected a number, got " + strconv.Quote(value)}
	}
	*dst = v

	return nil
}

func setInt(dst *int, value string, line int) error {
	v, err := strconv.Atoi(value)
	if err != nil || v < 0 {
		return &SyntaxError{Line: line, Msg: "expected a non-negative integer, got " + strconv.Quote(value)}
	}
	*dst = v

	return nil
}

func setBool(dst *bool, value string, line int) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return &SyntaxError{Line: line, Msg: "expected a boolean, got " + strconv.Quote(value)}
	}
	*dst = v

	return nil
}
