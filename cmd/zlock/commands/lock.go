package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zlock/internal/core/domain"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock NAME...",
		Short: "Add names or patterns to the lock list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.reconcile(cmd, domain.StatePresent, args)
		},
	}
	addFilterFlags(cmd)
	cmd.Flags().StringP(flagMessage, "m", "", "Message attached to the new locks")
	return cmd
}

func (c *CLI) newUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock NAME...",
		Short: "Remove names or patterns from the lock list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.reconcile(cmd, domain.StateAbsent, args)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current lock list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.reconcile(cmd, domain.StateList, nil)
		},
	}
}

func (c *CLI) newPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove every entry from the lock list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.reconcile(cmd, domain.StatePurge, nil)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagType, "t", "", "Package type: package, patch, pattern, product or srcpackage")
	cmd.Flags().StringP(flagRepo, "r", "", "Restrict locks to a repository alias, name, number or URI")
}

func (c *CLI) reconcile(cmd *cobra.Command, state domain.State, names []string) error {
	req := requestFromFlags(cmd)
	req.State = state
	req.Names = names
	return c.app.Run(cmd.Context(), cmd.OutOrStdout(), req, runOptions(cmd))
}

// requestFromFlags reads every request flag the command defines.
// Flags a command does not define keep their zero value.
func requestFromFlags(cmd *cobra.Command) domain.Request {
	flags := cmd.Flags()

	binary, _ := flags.GetString(flagZypper)
	dryRun, _ := flags.GetBool(flagDryRun)
	pkgType, _ := flags.GetString(flagType)
	repo, _ := flags.GetString(flagRepo)
	message, _ := flags.GetString(flagMessage)

	return domain.Request{
		Options: domain.LockOptions{
			Type:    domain.PackageType(pkgType),
			Repo:    repo,
			Message: message,
		},
		DryRun: dryRun,
		Binary: binary,
	}
}
