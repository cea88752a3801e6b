package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vbparse/vb6"
	"github.com/dhamidi/vbparse/vb6/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := vb6.FromFile(args[0])
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tree, failures := parser.FromSource(src)

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(tree.Root); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "tree":
				fmt.Print(tree.DebugString())
			case "text":
				fmt.Print(tree.Text())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			for _, f := range failures {
				fmt.Fprintf(os.Stderr, "%s: %s\n", src.FileName, f)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, text)")

	return cmd
}
