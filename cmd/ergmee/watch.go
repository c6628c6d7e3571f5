package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmee/tui"
)

var watchCopyToClipboard bool

var watchCmd = &cobra.Command{
	Use:   "watch <theta-stream-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Live-monitor a running task's theta stream",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchCopyToClipboard, "copy", false, "copy the convergence summary to the clipboard on exit")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	program, err := tui.NewWatchProgram(path)
	if err != nil {
		return err
	}

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	w, ok := finalModel.(interface {
		Summary() string
		Close() error
	})
	if !ok {
		return nil
	}
	defer w.Close()

	summary := w.Summary()
	if summary == "" {
		return nil
	}
	fmt.Println(tui.RenderSummary(summary))

	if watchCopyToClipboard {
		if err := tui.CopyToClipboard(summary); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "could not copy to clipboard: %v\n", err)
		}
	}

	return nil
}
