// Package commands implements the CLI commands for the addon loader.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/addon/internal/app"
	"go.trai.ch/addon/internal/build"
)

// CLI represents the command line interface for addon.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir       string
	logFormat string
	verbose   bool
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(format string, verbose bool)
	Load(ctx context.Context, opts app.LoadOptions) (*app.LoadResult, error)
	List(ctx context.Context, opts app.ListOptions) (*app.ListResult, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
	NewPackage(ctx context.Context, opts app.NewOptions) (string, error)
	Pack(ctx context.Context, opts app.PackOptions) ([]app.PackedLayer, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "addon",
		Short:         "Discover, order and load addon packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so --version has no shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "C", "", "Directory to search for the addon configuration")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "auto", "Log format: auto, pretty, or json")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(c.logFormat, c.verbose)
	}

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newNewCmd())
	rootCmd.AddCommand(c.newPackCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
