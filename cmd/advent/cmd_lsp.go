package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/advent2020/lsp"
	"github.com/dhamidi/advent2020/solutions"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server that reports parse errors in input files",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, solutions.All())
			return server.RunStdio()
		},
	}
}
