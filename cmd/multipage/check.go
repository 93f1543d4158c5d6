package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/multipage/internal/adapters/cli"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the page configuration and the files it points at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlugin(flags, newLogger(flags.verbose))
			if err != nil {
				return err
			}

			problems, err := p.Check()
			if err != nil {
				return err
			}

			output := cli.NewWriterOutput(cmd.OutOrStdout())
			if len(problems) == 0 {
				output.PrintSuccess("%d pages OK", len(p.Pages()))
				return nil
			}

			for _, problem := range problems {
				output.PrintWarning("%s", problem)
			}
			return fmt.Errorf("%d problems found", len(problems))
		},
	}
}
