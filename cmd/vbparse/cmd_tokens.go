package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vbparse/vb6"
	"github.com/dhamidi/vbparse/vb6/parser"
)

func newTokensCmd() *cobra.Command {
	var includeTrivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a source file and list the tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := vb6.FromFile(args[0])
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			for _, t := range parser.Tokenize(src.Stream()) {
				if t.IsTrivia() && !includeTrivia {
					continue
				}
				fmt.Println(t)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeTrivia, "trivia", false, "include whitespace, newline, and comment tokens")

	return cmd
}
