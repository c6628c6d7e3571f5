// File: task.go
// Role: one estimation task end to end (spec §4.7): the single entry
// point cmd/ergmee's `run` subcommand and `batch`'s subprocesses call.
package driver

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/estconfig"
	"github.com/katalvlaran/ergmee/estimate"
	"github.com/katalvlaran/ergmee/graphstore"
	internalrng "github.com/katalvlaran/ergmee/internal/rng"
	"github.com/katalvlaran/ergmee/sampler"
)

// Options configures one task run. TaskID is the filename discriminator
// spec §4.7 names ("{theta_prefix}_{task}.txt"); Seed feeds
// internal/rng.ForTask. MetricsAddr, left empty, disables the optional
// prometheus endpoint. A zero Logger falls back to a disabled logger.
type Options struct {
	TaskID      int
	Seed        int64
	MetricsAddr string
	Logger      zerolog.Logger
}

// Run executes one estimation task against cfg and returns a non-zero
// error on any I/O or validation failure (spec §4.7's "return a
// non-zero status"); the caller (cmd/ergmee) maps that to a process
// exit code.
func Run(cfg *estconfig.Config, opts Options) error {
	runID := uuid.New()
	logger := opts.Logger.With().Str("run_id", runID.String()).Int("task_id", opts.TaskID).Logger()

	g, reg, err := loadGraphAndRegistry(cfg, &logger)
	if err != nil {
		return err
	}
	logger.Info().Int("n", g.N()).Int("p", reg.Len()).Msg("config loaded")

	rng := internalrng.ForTask(opts.Seed, opts.TaskID)

	var metrics *Metrics
	if opts.MetricsAddr != "" {
		metrics = NewMetrics()
		srv := metrics.Serve(opts.MetricsAddr)
		defer func() { _ = srv.Close() }()
	}

	thetaFile, err := os.Create(fmt.Sprintf("%s_%d.txt", cfg.ThetaFilePrefix, opts.TaskID))
	if err != nil {
		logger.Error().Err(err).Str("kind", "io").Msg("cannot open theta stream")

		return fmt.Errorf("driver: opening theta stream: %w", err)
	}
	defer thetaFile.Close()

	dzAFile, err := os.Create(fmt.Sprintf("%s_%d.txt", cfg.DzAFilePrefix, opts.TaskID))
	if err != nil {
		logger.Error().Err(err).Str("kind", "io").Msg("cannot open dzA stream")

		return fmt.Errorf("driver: opening dzA stream: %w", err)
	}
	defer dzAFile.Close()

	thetaOut, err := newStreamWriter(thetaFile, reg.Names(), cfg.UseIFDSampler, false, g)
	if err != nil {
		return fmt.Errorf("driver: writing theta header: %w", err)
	}
	dzAOut, err := newStreamWriter(dzAFile, reg.Names(), cfg.UseIFDSampler, true, g)
	if err != nil {
		return fmt.Errorf("driver: writing dzA header: %w", err)
	}

	n := g.N()
	m := cfg.SamplerSteps
	m1 := m1Steps(cfg.SSteps, n, m)

	p := reg.Len()
	pExt := p
	if cfg.UseIFDSampler {
		pExt = p + 1
	}
	stepper := buildStepper(g, reg, cfg)

	acaS := perSlotConstants(p, cfg.UseIFDSampler, cfg.ACAS, cfg.IfdK)
	seedResult, err := estimate.AlgorithmS(pExt, m1, m, acaS, stepper, rng, func(t int, theta, _ []float64, acceptanceRate float64) error {
		if metrics != nil {
			metrics.Observe(reg.Names(), theta, acceptanceRate)
		}

		return thetaOut.writeRow(t, theta, acceptanceRate)
	})
	if err != nil {
		logger.Error().Err(err).Msg("algorithm S failed")

		return fmt.Errorf("driver: algorithm S: %w", err)
	}
	logger.Info().Msg("S complete")

	eeParams := estimate.EEParams{
		MOut: cfg.EESteps, MIn: cfg.EEInnerSteps, M: m,
		ACAEE:          perSlotConstants(p, cfg.UseIFDSampler, cfg.ACAEE, cfg.IfdK),
		CompC:          cfg.CompC,
		MuFloor:        cfg.MuFloor,
		SigmaFloor:     cfg.SigmaFloor,
		OutputAllSteps: cfg.OutputAllSteps,
	}

	outer := 0
	_, err = estimate.AlgorithmEE(seedResult.Theta, seedResult.Dmean, stepper, rng, eeParams,
		func(t int, theta, dzA []float64, acceptanceRate float64) error {
			if metrics != nil {
				metrics.Observe(reg.Names(), theta, acceptanceRate)
				if cfg.UseIFDSampler {
					metrics.ObserveDzArc(dzA[len(dzA)-1])
				}
			}
			if err := thetaOut.writeRow(t, theta, acceptanceRate); err != nil {
				return err
			}

			return dzAOut.writeRow(t, dzA, acceptanceRate)
		},
		func() error {
			outer++
			logger.Debug().Int("outer", outer).Int("of", cfg.EESteps).Msg("EE outer iteration")
			if metrics != nil {
				metrics.IncOuterIteration()
			}
			if err := thetaOut.Flush(); err != nil {
				return err
			}

			return dzAOut.Flush()
		})
	if err != nil {
		logger.Error().Err(err).Msg("algorithm EE failed")

		return fmt.Errorf("driver: algorithm EE: %w", err)
	}

	if cfg.OutputSimulatedNetwork {
		if err := writeSimulatedNetwork(cfg, opts.TaskID, g); err != nil {
			logger.Error().Err(err).Str("kind", "io").Msg("cannot write simulated network")

			return err
		}
	}

	logger.Info().Msg("driver exit")

	return nil
}

// m1Steps computes M1 = floor(M1_steps*n/m) (spec §4.7), guarding
// against a zero sampler-length config producing a division by zero.
func m1Steps(ssteps, n, m int) int {
	if m == 0 {
		return 0
	}

	return ssteps * n / m
}

// perSlotConstants builds the per-effect ACA vector AlgorithmS/EE
// consume: when ifd is false, a single-element slice holding constant,
// which they broadcast to every slot; when ifd is true, p slots holding
// constant plus one more slot carrying ifdConstant for the appended
// ifd_aux parameter (spec
// §6's "ifd_K: IFD auxiliary step scale", distinct from ACA_S/ACA_EE).
func perSlotConstants(p int, ifd bool, constant, ifdConstant float64) []float64 {
	if !ifd {
		return []float64{constant}
	}
	out := make([]float64, p+1)
	for k := 0; k < p; k++ {
		out[k] = constant
	}
	out[p] = ifdConstant

	return out
}

// buildStepper adapts sampler.Basic or sampler.IFD into the
// sampler-agnostic estimate.Stepper shape (DESIGN.md's "ifd_aux
// integration" decision): for IFD, theta's last slot is ifd_aux, and
// the sampler's ArcAdd/ArcDel become that slot's add/del deltas.
func buildStepper(g *graphstore.Graph, reg *effects.Registry, cfg *estconfig.Config) estimate.Stepper {
	if !cfg.UseIFDSampler {
		var basic sampler.Basic

		return func(theta []float64, rng *rand.Rand, m int, performMove bool) estimate.StepResult {
			res := basic.Step(g, reg, theta, rng, sampler.Params{
				M: m, PerformMove: performMove,
				UseConditional:    cfg.UseConditionalEstimation,
				ForbidReciprocity: cfg.ForbidReciprocity,
			})

			return estimate.StepResult{AddDelta: res.AddDelta, DelDelta: res.DelDelta, AcceptanceRate: res.AcceptanceRate}
		}
	}

	var ifd sampler.IFD

	return func(theta []float64, rng *rand.Rand, m int, performMove bool) estimate.StepResult {
		p := len(theta) - 1
		core := theta[:p]
		ifdAux := theta[p]
		res := ifd.Step(g, reg, core, ifdAux, rng, sampler.Params{
			M: m, PerformMove: performMove,
			UseConditional:    cfg.UseConditionalEstimation,
			ForbidReciprocity: cfg.ForbidReciprocity,
		})

		addDelta := append(append([]float64{}, res.AddDelta...), res.ArcAdd)
		delDelta := append(append([]float64{}, res.DelDelta...), res.ArcDel)

		return estimate.StepResult{AddDelta: addDelta, DelDelta: delDelta, AcceptanceRate: res.AcceptanceRate}
	}
}

// loadGraphAndRegistry opens the graph and attribute files cfg names and
// resolves the effect registry (spec §4.7: "load the graph, attach
// attributes, resolve name->index tables").
func loadGraphAndRegistry(cfg *estconfig.Config, logger *zerolog.Logger) (*graphstore.Graph, *effects.Registry, error) {
	g, err := openGraph(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	reg, err := buildRegistry(cfg, g.Attributes())
	if err != nil {
		logger.Error().Err(err).Str("kind", "config-semantics").Msg("cannot resolve effect registry")

		return nil, nil, fmt.Errorf("driver: resolving registry: %w", err)
	}

	return g, reg, nil
}
