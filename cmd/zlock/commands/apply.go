package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zlock/internal/app"
	"go.trai.ch/zlock/internal/core/domain"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply -f FILE [NAME...]",
		Short: "Reconcile the lock list against a request file",
		Long: "Reads a YAML or JSON request file. Flags given on the command line " +
			"take precedence over the file, and names given as arguments replace its 'name' list.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(flagFile)

			overrides, err := overridesFromFlags(cmd)
			if err != nil {
				return err
			}
			overrides.Names = args

			return c.app.Apply(cmd.Context(), cmd.OutOrStdout(), path, overrides, runOptions(cmd))
		},
	}
	cmd.Flags().StringP(flagFile, "f", "", "Request file to apply")
	_ = cmd.MarkFlagRequired(flagFile)
	cmd.Flags().StringP(flagState, "s", "", "Override the state: present, absent, list or purge")
	addFilterFlags(cmd)
	cmd.Flags().StringP(flagMessage, "m", "", "Message attached to new locks")
	return cmd
}

// overridesFromFlags collects only the flags the user actually set.
func overridesFromFlags(cmd *cobra.Command) (app.Overrides, error) {
	var o app.Overrides
	flags := cmd.Flags()

	if flags.Changed(flagState) {
		s, _ := flags.GetString(flagState)
		state, err := domain.ParseState(s)
		if err != nil {
			return o, err
		}
		o.State = &state
	}
	if flags.Changed(flagType) {
		t, _ := flags.GetString(flagType)
		pkgType, err := domain.ParsePackageType(t)
		if err != nil {
			return o, err
		}
		o.Type = &pkgType
	}
	if flags.Changed(flagRepo) {
		repo, _ := flags.GetString(flagRepo)
		o.Repo = &repo
	}
	if flags.Changed(flagMessage) {
		message, _ := flags.GetString(flagMessage)
		o.Message = &message
	}
	if flags.Changed(flagDryRun) {
		dryRun, _ := flags.GetBool(flagDryRun)
		o.DryRun = &dryRun
	}
	if flags.Changed(flagZypper) {
		binary, _ := flags.GetString(flagZypper)
		o.Binary = &binary
	}

	return o, nil
}
