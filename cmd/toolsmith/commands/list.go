package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/toolsmith/manifest"
)

func newListCommand(manifestDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tool manifests",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := manifest.NewLoader(*manifestDir)
			tools, err := loader.List()
			if err != nil {
				return err
			}
			if len(tools) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No manifests found under %s\n", *manifestDir)
				return nil
			}

			names := make([]string, 0, len(tools))
			for name := range tools {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(tools[name], ", "))
			}
			return nil
		},
	}
}
