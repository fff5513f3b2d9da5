package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hferris/matchbook/internal/demo"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
}

// DemoInfo is the JSON shape of one registry entry.
type DemoInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the demonstration registry",
		Long: `List the demonstration routines in their fixed run order.

Each entry shows the registry name (usable with 'matchbook run') and a
one-line summary of the matching capability it demonstrates.

Examples:
  matchbook list
  matchbook list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	reg := demo.Registry()

	if opts.Format == "json" {
		infos := make([]DemoInfo, len(reg))
		for i, d := range reg {
			infos[i] = DemoInfo{Name: d.Name, Summary: d.Summary}
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(CLIResponse{
			Status: "ok",
			Data:   infos,
		})
	}

	for _, d := range reg {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", d.Name, d.Summary)
	}
	return nil
}
