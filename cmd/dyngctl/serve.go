package main

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/driftmap/dyng/config"
	"github.com/driftmap/dyng/httpapi"
	"github.com/driftmap/dyng/logging"
)

func newServeCmd(configPath *string, debug *bool) *cobra.Command {
	var port int
	var portSet bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP/WebSocket service",
		PreRun: func(cmd *cobra.Command, args []string) {
			portSet = cmd.Flags().Changed("port")
		},
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
			if portSet {
				cfg.Server.Port = &port
			}

			s := httpapi.New(cfg, logger)
			addr := fmt.Sprintf(":%d", *cfg.Server.Port)
			logger.Info("starting server", zap.String("addr", addr))
			return http.ListenAndServe(addr, s.Router())
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	return cmd
}
