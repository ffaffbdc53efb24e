package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/driftmap/dyng/frameview"
	"github.com/driftmap/dyng/interpolate"
	"github.com/driftmap/dyng/textformat"
)

func newAnimateCmd() *cobra.Command {
	var keyframesPath string
	var at float32

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Sample a built animation at a point in time and print the frame as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(keyframesPath)
			if err != nil {
				return errors.Wrapf(err, "opening keyframes %s", keyframesPath)
			}
			defer f.Close()

			dg, err := textformat.ParseDynamicGraph(f)
			if err != nil {
				return errors.Wrap(err, "parsing keyframes")
			}

			interp := interpolate.NewPhasedInterpolator()
			frame, err := interp.At(dg.States(), at)
			if err != nil {
				return errors.Wrap(err, "interpolating frame")
			}

			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(frameview.New(frame)); err != nil {
				return errors.Wrap(err, "encoding frame")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyframesPath, "keyframes", "", "path to a text-format keyframes file")
	cmd.Flags().Float32Var(&at, "at", 0, "time, in seconds, to sample the animation at")
	cmd.MarkFlagRequired("keyframes")
	return cmd
}
