package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rshade/canteenco2/internal/api"
	"github.com/rshade/canteenco2/internal/config"
)

// NewServeCmd creates the serve command, which runs the HTTP API.
func NewServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the impact, sourcing and reference data HTTP API",
		Long: `Runs the HTTP API until interrupted. Both reference datasets are loaded
before the listener starts, so a broken database or sourcing file stops the
server instead of failing requests.

Routes live under /api/v1; MCP-style tool calls are served at /mcp/tools.`,
		Example: `  canteenco2 serve
  canteenco2 serve --host 0.0.0.0 --port 9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			sc := cfg.Server
			if cmd.Flags().Changed("host") {
				sc.Host = host
			}
			if cmd.Flags().Changed("port") {
				sc.Port = port
			}
			if sc.Port < 1 || sc.Port > 65535 {
				return fmt.Errorf("invalid port %d", sc.Port)
			}

			if debug, _ := cmd.Flags().GetBool("debug"); !debug {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.NewServer(logger, newFactorsProvider(cfg.Data), newSourcingProvider(cfg.Data))
			if err := srv.Warm(ctx); err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}

			cmd.Printf("Serving on http://%s\n", sc.Addr())
			return srv.ListenAndServe(ctx, sc.Addr())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")

	return cmd
}
