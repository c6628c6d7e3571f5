package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmee/tui"
)

var initOutPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Args:  cobra.NoArgs,
	Short: "Interactively build an estconfig key=value file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initOutPath, "out", "config.txt", "output config path")
}

func runInit(cmd *cobra.Command, args []string) error {
	answers, err := tui.RunInitWizard()
	if err != nil {
		return err
	}
	if err := tui.WriteConfig(initOutPath, answers); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("wrote %s\n", initOutPath)

	return nil
}
