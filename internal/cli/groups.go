package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crossbind/crossbind/internal/store"
)

// NewGroupsCommand creates the groups command. It lists the record groups
// present in the store.
func NewGroupsCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "groups",
		Short:         "List record groups in the store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to open store at %s", dbPath), err)
			}
			defer s.Close()

			groups, err := s.Groups(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to list groups", err)
			}

			if opts.Format == "json" {
				counts := make(map[string]int, len(groups))
				for _, g := range groups {
					recs, err := s.ReadGroup(cmd.Context(), g)
					if err != nil {
						return WrapExitError(ExitFailure, "failed to list groups", err)
					}
					counts[g] = len(recs)
				}
				return formatter.Success(map[string]any{
					"groups": groups,
					"counts": counts,
				})
			}

			if len(groups) == 0 {
				return formatter.Success("No groups in store")
			}
			return formatter.Success(strings.Join(groups, "\n"))
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "crossbind.db", "path to the record store")

	return cmd
}
