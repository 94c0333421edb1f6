package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tokens FORMAT",
		Short: "Show the tokens a format compiles to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runtimeFrom(cmd).patterns.Pattern(args[0])
			if err != nil {
				return err
			}

			tokens := p.Tokens()
			names := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				names = append(names, tok.String())
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(names)
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print tokens as a JSON array")
	return cmd
}
