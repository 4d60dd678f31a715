package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/advent2020/input"
	"github.com/dhamidi/advent2020/parser"
)

// dayArg accepts "7", "07" and "day07".
var dayArg = parser.Verify(
	parser.Preceded(parser.Opt(parser.Tag("day")), parser.Uint8),
	func(n uint8) bool { return n >= 1 && n <= 25 },
)

func newFetchCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "fetch <N...>",
		Short: "Download puzzle inputs into the input directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := parser.Parse(dayArg, strings.TrimSpace(arg))
				if err != nil {
					return fmt.Errorf("invalid day %q: %w", arg, err)
				}
				days = append(days, int(n))
			}

			fetcher := input.NewFetcher(a.cfg)
			for _, day := range days {
				if force {
					data, err := fetcher.Fetch(cmd.Context(), day)
					if err != nil {
						return fmt.Errorf("day %d: %w", day, err)
					}
					if err := fetcher.Store(day, data); err != nil {
						return err
					}
				} else if _, err := fetcher.Input(cmd.Context(), day); err != nil {
					return fmt.Errorf("day %d: %w", day, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), fetcher.Path(day))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "download even if a cached input exists")

	return cmd
}
