// File: graph_io.go
// Role: opens the graph and attribute files cfg names (spec §4.7/§6) and
// writes the optional simulated-network output.
package driver

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ergmee/estconfig"
	"github.com/katalvlaran/ergmee/graphstore"
	"github.com/katalvlaran/ergmee/ioformat"
)

// openGraph loads the Pajek arc list, attaches whichever attribute files
// are configured, and attaches snowball zone data when conditional
// estimation is on.
func openGraph(cfg *estconfig.Config, logger *zerolog.Logger) (*graphstore.Graph, error) {
	g, err := openPajek(cfg.ArclistFile, logger)
	if err != nil {
		return nil, err
	}

	attrs := graphstore.NewAttributes(g.N())
	loaded := false

	if err := loadAttrFile(cfg.BinattrFile, logger, func(f *os.File) error {
		loaded = true

		return ioformat.LoadBinaryAttributes(f, attrs, g.N())
	}); err != nil {
		return nil, err
	}
	if err := loadAttrFile(cfg.CatattrFile, logger, func(f *os.File) error {
		loaded = true

		return ioformat.LoadCategoricalAttributes(f, attrs, g.N())
	}); err != nil {
		return nil, err
	}
	if err := loadAttrFile(cfg.ContattrFile, logger, func(f *os.File) error {
		loaded = true

		return ioformat.LoadContinuousAttributes(f, attrs, g.N())
	}); err != nil {
		return nil, err
	}
	if err := loadAttrFile(cfg.SetattrFile, logger, func(f *os.File) error {
		loaded = true

		return ioformat.LoadSetAttributes(f, attrs, g.N())
	}); err != nil {
		return nil, err
	}
	if loaded {
		g.AttachAttributes(attrs)
	}

	if cfg.UseConditionalEstimation {
		if err := attachSnowball(cfg.ZoneFile, g, logger); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func openPajek(path string, logger *zerolog.Logger) (*graphstore.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("kind", "io").Str("file", path).Msg("cannot open graph file")

		return nil, err
	}
	defer f.Close()

	g, err := ioformat.ReadPajek(f)
	if err != nil {
		logger.Error().Err(err).Str("kind", "graph-integrity").Str("file", path).Msg("malformed graph file")

		return nil, err
	}

	return g, nil
}

// loadAttrFile opens path (a no-op if empty, since not every attribute
// kind is present in a given task's config) and runs load against it.
func loadAttrFile(path string, logger *zerolog.Logger, load func(*os.File) error) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("kind", "io").Str("file", path).Msg("cannot open attribute file")

		return err
	}
	defer f.Close()

	if err := load(f); err != nil {
		logger.Error().Err(err).Str("kind", "io").Str("file", path).Msg("malformed attribute file")

		return err
	}

	return nil
}

func attachSnowball(path string, g *graphstore.Graph, logger *zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("kind", "io").Str("file", path).Msg("cannot open zone file")

		return err
	}
	defer f.Close()

	zones, zMax, err := ioformat.LoadZones(f, g.N())
	if err != nil {
		logger.Error().Err(err).Str("kind", "io").Str("file", path).Msg("malformed zone file")

		return err
	}

	return g.AttachSnowball(zones, zMax)
}

// writeSimulatedNetwork writes g's final state as Pajek (spec §4.7's
// "optionally write the final graph out as Pajek").
func writeSimulatedNetwork(cfg *estconfig.Config, taskID int, g *graphstore.Graph) error {
	f, err := os.Create(simNetPath(cfg, taskID))
	if err != nil {
		return err
	}
	defer f.Close()

	return ioformat.WritePajek(f, g)
}

func simNetPath(cfg *estconfig.Config, taskID int) string {
	return fmt.Sprintf("%s_%d.txt", cfg.SimNetFilePrefix, taskID)
}
