package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmee/plot"
)

var plotOutDir string

var plotCmd = &cobra.Command{
	Use:   "plot <theta-stream-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Render a finished theta/dzA stream to one SVG trace per effect",
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOutDir, "out", "", "output directory (default: alongside the stream file)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	defer f.Close()

	series, err := plot.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing stream: %w", err)
	}

	dir := plotOutDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	prefix := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	paths, err := plot.SaveAll(dir, prefix, series)
	if err != nil {
		return fmt.Errorf("rendering traces: %w", err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}

	return nil
}
