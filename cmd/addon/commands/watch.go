package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/addon/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Load addons, then load new packages as they appear",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(cmd.OutOrStdout())
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Dir:     c.dir,
				OnCycle: p.load,
			})
		},
	}
}
