package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/multipage/internal/adapters/cli"
	"github.com/3-lines-studio/multipage/internal/adapters/fs"
	"github.com/3-lines-studio/multipage/internal/templates"
	"github.com/3-lines-studio/multipage/internal/usecase"
)

func initCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Create a new multi-page project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			service := usecase.NewInitService(fs.NewOSFileSystem(), cli.NewWriterOutput(cmd.OutOrStdout()))
			out := service.InitProject(usecase.InitInput{ProjectDir: dir, Template: template})
			return out.Error
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "starter", fmt.Sprintf("Project template (%s)", strings.Join(templates.Names(), ", ")))
	return cmd
}
