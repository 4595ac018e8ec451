package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiplan/fiplan/internal/server"
)

func initServeCommand() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the projection API over HTTP.

Endpoints:
  GET  /healthz        liveness check
  POST /v1/project     project a scenario
  POST /v1/tax         compute a tax breakdown
  GET  /v1/milestones  list the milestone catalog
`,
		Run: func(cmd *cobra.Command, args []string) {
			host, _ := cmd.Flags().GetString("host")
			port, _ := cmd.Flags().GetInt("port")
			debugMode, _ := cmd.Flags().GetBool("debug")

			level := slog.LevelInfo
			if debugMode {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			srv := server.NewServer(newEngine(cmd), logger)

			addr := fmt.Sprintf("%s:%d", host, port)
			if err := srv.ListenAndServe(addr); err != nil {
				log.Fatal(err)
			}
		},
	}

	serveCmd.Flags().String("host", "0.0.0.0", "Address to bind")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}
