package main

import (
	"github.com/spf13/cobra"

	"github.com/tcoloa/lease-calculator/internal/logging"
	"github.com/tcoloa/lease-calculator/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the calculation engine as a JSON API",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.NewLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return server.New(logger).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
