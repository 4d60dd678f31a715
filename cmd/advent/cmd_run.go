package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/advent2020/input"
	"github.com/dhamidi/advent2020/puzzle"
	"github.com/dhamidi/advent2020/solutions"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [dayNN|N ...]",
		Short: "Solve the given days, or all days",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &puzzle.Runner{
				Inputs: input.NewFetcher(a.cfg),
				Out:    cmd.OutOrStdout(),
				Year:   a.cfg.Year,
			}
			return runner.Run(cmd.Context(), solutions.All(), args)
		},
	}
}
