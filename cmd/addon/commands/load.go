package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/addon/internal/app"
	"go.trai.ch/addon/internal/core/domain"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Run one addon load cycle and report each package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noHost, _ := cmd.Flags().GetBool("no-host")

			res, err := c.app.Load(cmd.Context(), app.LoadOptions{
				Dir:    c.dir,
				NoHost: noHost,
			})
			if err != nil {
				return err
			}

			newPrinter(cmd.OutOrStdout()).load(res)
			if len(res.Failed) > 0 {
				return domain.ErrAddonsFailed
			}
			return nil
		},
	}
	cmd.Flags().Bool("no-host", false, "Skip mounting the host resources")
	return cmd
}
