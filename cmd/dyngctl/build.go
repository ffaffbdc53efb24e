package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/driftmap/dyng/config"
	"github.com/driftmap/dyng/ingest"
	"github.com/driftmap/dyng/layout"
	"github.com/driftmap/dyng/logging"
	"github.com/driftmap/dyng/textformat"
	"github.com/driftmap/dyng/timeline"
)

func newBuildCmd(configPath *string, debug *bool) *cobra.Command {
	var scriptPath, outPath string
	var tolerance float32
	var toleranceSet bool
	var workers int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Ingest a modification script and write its laid-out keyframes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*debug)
			if err != nil {
				return errors.Wrap(err, "constructing logger")
			}
			defer logger.Sync()

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if toleranceSet {
				t := float64(tolerance)
				cfg.Tolerance = &t
			}
			if workers != 0 {
				cfg.Workers = &workers
			}

			dg, err := ingestScript(scriptPath)
			if err != nil {
				return err
			}

			runLayout(dg, cfg)

			out, err := os.Create(outPath)
			if err != nil {
				return errors.Wrapf(err, "creating output file %s", outPath)
			}
			defer out.Close()

			if err := textformat.SerializeDynamicGraph(out, dg); err != nil {
				return errors.Wrap(err, "writing keyframes")
			}
			logger.Info("built keyframes")
			return nil
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "path to a JSON or CSV modification script")
	cmd.Flags().StringVar(&outPath, "out", "keyframes.txt", "path to write the text-format keyframes to")
	cmd.Flags().Float32Var(&tolerance, "tolerance", 0, "mental-distance tolerance (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count for parallel refinement (overrides config)")
	cmd.MarkFlagRequired("script")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		toleranceSet = cmd.Flags().Changed("tolerance")
	}
	return cmd
}

func ingestScript(path string) (*timeline.DynamicGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading script %s", path)
	}

	var proc ingest.ScriptProcessor
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		proc = ingest.NewCSVScriptProcessor()
	default:
		proc = ingest.NewJSONScriptProcessor()
	}

	dg, err := proc.Process(data)
	if err != nil {
		return nil, errors.Wrapf(err, "ingesting %s", path)
	}
	return dg, nil
}

func runLayout(dg *timeline.DynamicGraph, cfg *config.Config) {
	width, height := float32(*cfg.Canvas.Width), float32(*cfg.Canvas.Height)
	tolerance := float32(*cfg.Tolerance)
	workers := *cfg.Workers

	if workers > 1 {
		pl := layout.NewParallelForesightedLayout(workers, tolerance, width, height)
		defer pl.Close()
		pl.Run(dg)
		return
	}

	l := layout.NewForesightedLayout(width, height)
	l.Tolerance = tolerance
	l.Run(dg)
}
