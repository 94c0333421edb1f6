package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dtmatch/internal/api"
	"github.com/dmitrymomot/dtmatch/pkg/httpserver"
	"github.com/dmitrymomot/dtmatch/pkg/i18n"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Long: `Serve exposes POST /v1/validate, POST /v1/compile and GET /health.
Error messages are localized according to the Accept-Language header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := runtimeFrom(cmd)
			ctx := cmd.Context()

			translator, err := i18n.NewTranslator(ctx, i18n.BuiltinAdapter(), i18n.WithLogger(rt.log))
			if err != nil {
				return err
			}

			httpCfg := rt.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}

			router := api.New(rt.patterns,
				api.WithLogger(rt.log),
				api.WithTranslator(translator),
			).Routes()

			return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(rt.log)).Run(ctx, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides DTMATCH_HTTP_ADDR)")
	return cmd
}
