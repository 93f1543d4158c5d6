package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/multipage/internal/adapters/cli"
)

func routesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlugin(flags, newLogger(flags.verbose))
			if err != nil {
				return err
			}

			output := cli.NewWriterOutput(cmd.OutOrStdout())
			rules := p.Rules()
			if len(rules) == 0 {
				output.PrintWarning("No pages configured")
				return nil
			}

			output.PrintHeader(fmt.Sprintf("%d routes", len(rules)))
			for _, rule := range rules {
				line := fmt.Sprintf("%-24s %s -> %s", rule.Path, rule.Target, rule.Output)
				if !rule.TargetIsHTML() && rule.Template != "" {
					line += fmt.Sprintf(" (template %s)", rule.Template)
				}
				output.PrintStep("", "%s", line)
			}
			return nil
		},
	}
}
