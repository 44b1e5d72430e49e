package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matfocus/matfocus/internal/server"
)

func newServeCmd(state *appState) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the insight backend HTTP server",
		Long: `Serve the insight API over HTTP. The server answers score derivation and
insight generation requests and shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(cmd, state)
			if err != nil {
				return err
			}
			insights, err := buildInsightService(cmd, state)
			if err != nil {
				return err
			}

			listenAddr := state.cfg.HTTPAddr
			if addr != "" {
				listenAddr = addr
			}

			srv := server.New(server.Options{
				Addr:     listenAddr,
				Catalog:  catalog,
				Insights: insights,
				Logger:   state.logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}
