package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vbparse/vb6/workspace"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Parse sources and report failures, .vbp projects and directories expand to their files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var paths []string
			for _, arg := range args {
				if workspace.IsProjectPath(arg) {
					project, err := workspace.LoadProject(arg)
					if err != nil {
						return err
					}
					paths = append(paths, project.SourceFiles()...)
					continue
				}
				info, err := os.Stat(arg)
				if err != nil {
					return err
				}
				if !info.IsDir() {
					paths = append(paths, arg)
					continue
				}
				err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil || info.IsDir() {
						return err
					}
					if workspace.IsSourcePath(path) {
						paths = append(paths, path)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			ws := workspace.New(".")
			if err := ws.ParseFiles(cmd.Context(), paths); err != nil {
				return err
			}

			for _, f := range ws.Files() {
				if f.ReadErr != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", f.Path, f.ReadErr)
					continue
				}
				for _, failure := range f.Failures {
					fmt.Fprintf(os.Stderr, "%s: %s\n", f.Path, failure)
				}
			}

			if total := ws.TotalFailures(); total > 0 {
				return fmt.Errorf("%d parse failure(s)", total)
			}
			return nil
		},
	}
}
