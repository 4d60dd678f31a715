package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dhamidi/advent2020/input"
	"github.com/dhamidi/advent2020/parser"
	"github.com/dhamidi/advent2020/puzzle"
	"github.com/dhamidi/advent2020/solutions"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <day> [file]",
		Short: "Check that an input parses, reporting the failure position",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := puzzle.Select(solutions.All(), args[:1])
			if err != nil {
				return err
			}
			d := selected[0]

			var name, text string
			if len(args) == 2 {
				name = args[1]
				data, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				text = string(data)
			} else {
				fetcher := input.NewFetcher(a.cfg)
				name = fetcher.Path(d.Number())
				if text, err = fetcher.Input(cmd.Context(), d.Number()); err != nil {
					return err
				}
			}

			out := termenv.NewOutput(cmd.OutOrStdout())
			err = d.Check(strings.TrimSuffix(text, "\n"))
			var serr *parser.SyntaxError
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, out.String("ok").Foreground(termenv.ANSIBrightGreen))
				return nil
			case errors.As(err, &serr):
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%s: %s\n%s\n", name, serr.Pos,
					out.String(serr.Kind.String()).Foreground(termenv.ANSIBrightRed).Bold(),
					serr.Context())
			}
			return fmt.Errorf("%s: %w", d.Name(), err)
		},
	}
}
