// Command dyngctl drives the engine from the command line: build keyframes
// from a modification script, sample a built animation at a point in time,
// or serve both over HTTP/WebSocket.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var debug bool

	root := &cobra.Command{
		Use:   "dyngctl",
		Short: "Drive the foresighted-layout-with-tolerance animation engine",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newBuildCmd(&configPath, &debug))
	root.AddCommand(newAnimateCmd())
	root.AddCommand(newServeCmd(&configPath, &debug))
	return root
}
