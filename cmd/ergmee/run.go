package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmee/driver"
	"github.com/katalvlaran/ergmee/estconfig"
	"github.com/katalvlaran/ergmee/registry"
)

var (
	runConfigPath  string
	runTaskID      int
	runSeed        int64
	runMetricsAddr string
	runRegistryDB  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run one estimation task (spec §4.7)",
	RunE:  runTask,
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to the estconfig key=value file (required)")
	runCmd.Flags().IntVar(&runTaskID, "task", 1, "task id (output filename discriminator)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "PRNG seed")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "optional prometheus listen address, e.g. :9090")
	runCmd.Flags().StringVar(&runRegistryDB, "registry-db", "", "optional sqlite registry database for run bookkeeping")
}

func runTask(cmd *cobra.Command, args []string) error {
	if runConfigPath == "" {
		return fmt.Errorf("--config is required")
	}

	f, err := os.Open(runConfigPath)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cfg, err := estconfig.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	var reg *registry.Store
	var runID uuid.UUID
	if runRegistryDB != "" {
		reg, err = registry.Open(runRegistryDB)
		if err != nil {
			return fmt.Errorf("opening registry: %w", err)
		}
		defer reg.Close()

		runID = uuid.New()
		if err := reg.StartRun(runID, runTaskID, runConfigPath, time.Now()); err != nil {
			return fmt.Errorf("recording run start: %w", err)
		}
	}

	runErr := driver.Run(cfg, driver.Options{
		TaskID:      runTaskID,
		Seed:        runSeed,
		MetricsAddr: runMetricsAddr,
		Logger:      logger,
	})

	if reg != nil {
		status := registry.StatusDone
		if runErr != nil {
			status = registry.StatusFailed
		}
		if err := reg.FinishRun(runID, time.Now(), status, nil, nil); err != nil {
			logger.Error().Err(err).Msg("recording run finish failed")
		}
	}

	return runErr
}
