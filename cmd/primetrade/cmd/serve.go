package cmd

import (
	"fmt"
	"log/slog"

	"github.com/primetrade/landing/internal/config"
	"github.com/primetrade/landing/internal/logging"
	"github.com/primetrade/landing/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

		s, err := server.New(cfg)
		if err != nil {
			return fmt.Errorf("create server: %w", err)
		}
		s.RegisterRoutes()

		addr := cfg.GetAddr()
		if serveAddr != "" {
			addr = serveAddr
		}
		if err := s.Start(cmd.Context(), addr); err != nil {
			slog.Error("Server stopped", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides APP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
