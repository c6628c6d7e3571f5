// File: registry.go
// Role: resolves estconfig.Config's four *Params lists into a concrete
// effects.Registry, binding attribute and dyadic-covariate references
// against the graph's already-loaded attribute table (spec §4.7:
// "resolve name->index tables").
package driver

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/estconfig"
	"github.com/katalvlaran/ergmee/graphstore"
)

// buildRegistry resolves cfg's effect lists into a Registry, in the
// struct/attr/dyadic order effects.NewRegistry fixes. attrInteraction
// entries are folded into the attr group, since effects.AttrByName is
// also where "Interaction" resolves (spec §4.2's AttrInteraction kind is
// still an Attr-family name, just tagged differently in the Effect it
// returns).
func buildRegistry(cfg *estconfig.Config, attrs *graphstore.Attributes) (*effects.Registry, error) {
	structEffects, err := resolveStruct(cfg.StructParams)
	if err != nil {
		return nil, err
	}
	attrEffects, err := resolveAttr(cfg.AttrParams, attrs)
	if err != nil {
		return nil, err
	}
	interactionEffects, err := resolveAttr(cfg.AttrInteractionParams, attrs)
	if err != nil {
		return nil, err
	}
	attrEffects = append(attrEffects, interactionEffects...)

	dyadicEffects, err := resolveDyadic(cfg.DyadicParams, attrs)
	if err != nil {
		return nil, err
	}

	reg, err := effects.NewRegistry(structEffects, attrEffects, dyadicEffects)
	if err != nil {
		return nil, err
	}

	if cfg.UseIFDSampler && reg.HasArc() {
		return nil, ErrIFDWithArc
	}

	return reg, nil
}

func resolveStruct(refs []estconfig.EffectRef) ([]effects.Effect, error) {
	out := make([]effects.Effect, 0, len(refs))
	for _, ref := range refs {
		decay := 1.0
		if len(ref.Args) > 0 {
			v, err := strconv.ParseFloat(ref.Args[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s decay %q", ErrMissingArgs, ref.Name, ref.Args[0])
			}
			decay = v
		}
		e, ok := effects.StructuralByName(ref.Name, decay)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, ref.Name)
		}
		out = append(out, e)
	}

	return out, nil
}

func resolveAttr(refs []estconfig.EffectRef, attrs *graphstore.Attributes) ([]effects.Effect, error) {
	out := make([]effects.Effect, 0, len(refs))
	for _, ref := range refs {
		if len(ref.Args) != 1 {
			return nil, fmt.Errorf("%w: %s takes exactly one attribute name", ErrMissingArgs, ref.Name)
		}
		e, ok, err := resolveOneAttr(ref.Name, ref.Args[0], attrs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedAttribute, ref.Args[0])
		}
		out = append(out, e)
	}

	return out, nil
}

// resolveOneAttr binds one Sender/Receiver/Match/Mismatch/Interaction
// reference to the attribute table it actually names: Match/Mismatch
// always read Categorical; Sender/Receiver/Interaction try Continuous
// first (spec §6's contattrFile is the common case) and fall back to
// Binary (binattrFile), since both are plain per-node scalars from that
// trio's point of view.
func resolveOneAttr(effectName, attrName string, attrs *graphstore.Attributes) (effects.Effect, bool, error) {
	if attrs == nil {
		return effects.Effect{}, false, nil
	}
	if effectName == "Match" || effectName == "Mismatch" {
		idx, ok := attrs.CategoricalIndex(attrName)
		if !ok {
			return effects.Effect{}, false, nil
		}
		e, ok := effects.AttrByName(effectName, idx)

		return e, ok, nil
	}

	if idx, ok := attrs.ContinuousIndex(attrName); ok {
		e, ok := effects.AttrByName(effectName, idx)

		return e, ok, nil
	}
	if idx, ok := attrs.BinaryIndex(attrName); ok {
		e, ok := effects.BinaryAttrByName(effectName, idx)
		if !ok {
			return effects.Effect{}, false, fmt.Errorf("%w: %s has no binary form", ErrUnknownEffect, effectName)
		}

		return e, true, nil
	}

	return effects.Effect{}, false, nil
}

func resolveDyadic(refs []estconfig.EffectRef, attrs *graphstore.Attributes) ([]effects.Effect, error) {
	out := make([]effects.Effect, 0, len(refs))
	for _, ref := range refs {
		table, err := buildDyadicTable(ref, attrs)
		if err != nil {
			return nil, err
		}
		e, ok := effects.DyadicByName(ref.Name, table)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, ref.Name)
		}
		out = append(out, e)
	}

	return out, nil
}

func buildDyadicTable(ref estconfig.EffectRef, attrs *graphstore.Attributes) (effects.DyadicTable, error) {
	if attrs == nil {
		return nil, fmt.Errorf("%w: no attribute file loaded for %q", ErrUnresolvedAttribute, ref.Name)
	}
	switch ref.Name {
	case "EdgeCov":
		if len(ref.Args) != 1 {
			return nil, fmt.Errorf("%w: EdgeCov takes exactly one attribute name", ErrMissingArgs)
		}
		idx, ok := attrs.ContinuousIndex(ref.Args[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedAttribute, ref.Args[0])
		}

		return productTable{attrs: attrs, idx: idx}, nil
	case "GeoDistance":
		if len(ref.Args) != 2 {
			return nil, fmt.Errorf("%w: GeoDistance takes exactly two attribute names", ErrMissingArgs)
		}
		latIdx, ok := attrs.ContinuousIndex(ref.Args[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedAttribute, ref.Args[0])
		}
		longIdx, ok := attrs.ContinuousIndex(ref.Args[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedAttribute, ref.Args[1])
		}

		return coordTable{attrs: attrs, latIdx: latIdx, longIdx: longIdx}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, ref.Name)
	}
}
