package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the validation HTTP API",
		Long: `Run the validation HTTP API until interrupted.

Server timeouts, the request body limit and the per-client rate limit come
from FORMKIT_HTTP_* variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg httpserver.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			opts := []httpserver.Option{httpserver.WithLogger(a.logger)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}

			srv := httpserver.NewFromConfig(cfg, opts...)
			handler := httpserver.NewHandler(a.registry, a.logger,
				httpserver.WithMaxBodyBytes(cfg.MaxBodyBytes),
				httpserver.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
			)
			return srv.Run(cmd.Context(), handler)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides FORMKIT_HTTP_ADDR")

	return cmd
}
