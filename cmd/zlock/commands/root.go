// Package commands implements the zlock command line.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zlock/internal/app"
	"go.trai.ch/zlock/internal/build"
	"go.trai.ch/zlock/internal/core/domain"
)

// CLI represents the command line interface for zlock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, w io.Writer, req domain.Request, opts app.RunOptions) error
	Apply(ctx context.Context, w io.Writer, path string, overrides app.Overrides, opts app.RunOptions) error
	RunModule(ctx context.Context, w io.Writer, argsPath string) error
}

// Persistent flag names.
const (
	flagZypper  = "zypper"
	flagDryRun  = "dry-run"
	flagOutput  = "output"
	flagLogJSON = "log-json"
	flagType    = "type"
	flagRepo    = "repo"
	flagMessage = "message"
	flagFile    = "file"
	flagState   = "state"
)

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "zlock",
		Short:         "Reconcile the zypper package lock list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.String(flagZypper, domain.DefaultBinary, "Path to the zypper executable")
	pf.BoolP(flagDryRun, "n", false, "Report what would change without touching the lock list")
	pf.StringP(flagOutput, "o", "auto", "Report format: auto, json, compact, yaml or text")
	pf.Bool(flagLogJSON, false, "Write diagnostics to stderr as JSON lines")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(
		c.newLockCmd(),
		c.newUnlockCmd(),
		c.newListCmd(),
		c.newPurgeCmd(),
		c.newApplyCmd(),
		c.newModuleCmd(),
		c.newVersionCmd(),
	)

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

func runOptions(cmd *cobra.Command) app.RunOptions {
	output, _ := cmd.Flags().GetString(flagOutput)
	logJSON, _ := cmd.Flags().GetBool(flagLogJSON)
	return app.RunOptions{Output: output, LogJSON: logJSON}
}
