package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"askfolio/internal/config"
	"askfolio/internal/server"
)

// serveCmd runs the HTTP adapter.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question-answering HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		pipeline := buildPipeline(cfg)
		handler := server.NewAskHandler(pipeline, logger)
		srv := server.New(cfg.Server.Port, cfg.IsProduction(), handler, logger)

		ctx, cancel := signalContext()
		defer cancel()

		logger.Info("starting askfolio",
			zap.Int("port", cfg.Server.Port),
			zap.String("mode", cfg.Server.Mode),
			zap.Bool("backend_available", pipeline.BackendAvailable()),
		)
		return srv.Run(ctx)
	},
}
