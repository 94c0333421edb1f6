// Package cli implements the dtmatch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dtmatch/internal/api"
	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
	"github.com/dmitrymomot/dtmatch/pkg/logger"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// ErrMismatch is returned by check when at least one value does not match.
var ErrMismatch = errors.New("value does not match format")

// runtime holds what every subcommand needs once flags and env are resolved.
type runtime struct {
	cfg      Config
	log      *slog.Logger
	patterns *dtpattern.Cache
}

type runtimeKey struct{}

func runtimeFrom(cmd *cobra.Command) *runtime {
	rt, _ := cmd.Context().Value(runtimeKey{}).(*runtime)
	return rt
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		envFiles  []string
		logLevel  string
		logFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "dtmatch",
		Short: "Validate strings against date/time format patterns",
		Long: `dtmatch compiles date/time format patterns such as "yyyy-MM-dd" or
"YYYY-'W'ww-u" and checks whether values have the shape they describe.

Configuration is read from DTMATCH_* environment variables and an optional
.env file; flags take precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := LoadConfig(envFiles...)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			opts, err := cfg.loggerOptions()
			if err != nil {
				return err
			}
			opts = append(opts,
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(api.RequestIDExtractor),
			)
			log := logger.New(opts...)

			patterns, err := dtpattern.NewCache(cfg.CacheSize)
			if err != nil {
				return fmt.Errorf("create pattern cache: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, runtimeKey{}, &runtime{
				cfg:      cfg,
				log:      log,
				patterns: patterns,
			}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(logger.FormatText), string(logger.FormatJSON)}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newCheckCommand(),
		newTokensCommand(),
		newServeCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrMismatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
