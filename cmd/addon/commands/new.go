package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/addon/internal/app"
)

func (c *CLI) newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold an empty addon package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, _ := cmd.Flags().GetBool("script")
			root, _ := cmd.Flags().GetString("root")

			dir, err := c.app.NewPackage(cmd.Context(), app.NewOptions{
				Dir:    c.dir,
				Name:   args[0],
				Root:   root,
				Script: script,
			})
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).printf("created %s\n", dir)
			return nil
		},
	}
	cmd.Flags().Bool("script", false, "Add a script main module with an entry point")
	cmd.Flags().String("root", "", "Addon root to create the package in (default: first configured root)")
	return cmd
}
