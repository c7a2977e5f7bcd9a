package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/addon/internal/app"
)

func (c *CLI) newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <name>",
		Short: "Pack the overlay layers of a package into archives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, err := c.app.Pack(cmd.Context(), app.PackOptions{Dir: c.dir, Name: args[0]})
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).packed(args[0], layers)
			return nil
		},
	}
}
