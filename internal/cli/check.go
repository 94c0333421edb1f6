package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
	"github.com/dmitrymomot/dtmatch/pkg/logger"
)

func newCheckCommand() *cobra.Command {
	var (
		format string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "check --format FORMAT [value...]",
		Short: "Check values against a date/time format",
		Long: `Check validates each value against FORMAT and prints one result line per
value. With no arguments, values are read from stdin, one per line.

The command exits with status 1 if any value does not match.`,
		Example: `  dtmatch check --format yyyy-MM-dd 2024-02-29 2024-13-01
  printf '2001-W27-3\n' | dtmatch check -f "YYYY-'W'ww-u"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtimeFrom(cmd)
			p, err := rt.patterns.Pattern(format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			check := func(value string) {
				if err := p.Validate(value); err != nil {
					failed++
					attrs := []any{logger.Pattern(format), logger.Value(value), logger.Error(err)}
					var mm *dtpattern.MismatchError
					if errors.As(err, &mm) {
						attrs = append(attrs, logger.Token(mm.Token), logger.Remaining(mm.Remaining))
					}
					rt.log.DebugContext(cmd.Context(), "value rejected", attrs...)
					if !quiet {
						_, _ = fmt.Fprintf(out, "FAIL\t%s\t%v\n", value, err)
					}
					return
				}
				if !quiet {
					_, _ = fmt.Fprintf(out, "ok\t%s\n", value)
				}
			}

			if len(args) > 0 {
				for _, v := range args {
					check(v)
				}
			} else if err := eachLine(cmd.InOrStdin(), check); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d value(s) rejected", ErrMismatch, failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "date/time format pattern")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, report through the exit status only")
	_ = cmd.MarkFlagRequired("format")
	return cmd
}

func eachLine(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fn(sc.Text())
	}
	return sc.Err()
}
