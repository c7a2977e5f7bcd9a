package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/addon/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List discovered packages in load order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.List(cmd.Context(), app.ListOptions{Dir: c.dir})
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).list(res)
			return nil
		},
	}
}
