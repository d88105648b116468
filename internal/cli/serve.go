package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/internal/config"
	"github.com/matzehuels/chartgeom/pkg/api"
	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/observability"
)

// apiKeyPrefix scopes API cache entries away from CLI ones in a shared backend.
const apiKeyPrefix = "api:"

// serveCommand runs the HTTP API until the command context is cancelled.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart HTTP API",
		Long: `Serve exposes chart computation over HTTP:

  GET  /healthz
  GET  /version
  POST /v1/charts/{kind}

The listen address defaults to the config file's [server] addr, or
CHARTGEOM_ADDR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, apiKeyPrefix))
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.NewLogHooks(logger).Install()
			defer observability.Reset()

			printInfo("Listening on %s", StyleLink.Render("http://"+addr))
			return api.New(runner, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else "+config.DefaultAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
