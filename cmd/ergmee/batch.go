// File: batch.go
// Role: launches N independent `ergmee run` subprocesses, one per task
// id (spec §5's "separate OS processes, share no memory" model).
// errgroup supervises subprocess lifecycles and aggregates exit status;
// it never shares estimator state across tasks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	batchConfigPath string
	batchTasks      int
	batchSeedBase   int64
	batchRegistryDB string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Args:  cobra.NoArgs,
	Short: "Launch N independent estimation tasks as separate processes",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "path to the estconfig key=value file (required)")
	batchCmd.Flags().IntVar(&batchTasks, "tasks", 1, "number of tasks (task ids 1..N)")
	batchCmd.Flags().Int64Var(&batchSeedBase, "seed", 0, "base PRNG seed; each task uses seed (internal/rng mixes in task id)")
	batchCmd.Flags().StringVar(&batchRegistryDB, "registry-db", "", "optional sqlite registry database for run bookkeeping")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchConfigPath == "" {
		return fmt.Errorf("--config is required")
	}
	if batchTasks < 1 {
		return fmt.Errorf("--tasks must be at least 1")
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving own executable: %w", err)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for taskID := 1; taskID <= batchTasks; taskID++ {
		taskID := taskID
		g.Go(func() error {
			return launchTask(ctx, self, taskID)
		})
	}

	return g.Wait()
}

func launchTask(ctx context.Context, self string, taskID int) error {
	args := []string{
		"run",
		"--config", batchConfigPath,
		"--task", fmt.Sprintf("%d", taskID),
		"--seed", fmt.Sprintf("%d", batchSeedBase),
	}
	if batchRegistryDB != "" {
		args = append(args, "--registry-db", batchRegistryDB)
	}

	c := exec.CommandContext(ctx, self, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("task %d: %w", taskID, err)
	}

	return nil
}
