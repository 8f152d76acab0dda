package cli

import (
	"fmt"
	"sort"
	"tzconv/internal/timezone"

	"github.com/spf13/cobra"
)

func newZonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List the supported timezones and their UTC offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, z := range timezone.All() {
				fmt.Fprintf(out, "%-5s %s\n", z, z.Offset())
			}

			aliases := timezone.Aliases()
			names := make([]string, 0, len(aliases))
			for name, z := range aliases {
				if name != z.String() {
					names = append(names, name)
				}
			}
			sort.Strings(names)
			for _, name := range names {
				z := aliases[name]
				fmt.Fprintf(out, "%-5s %s (alias of %s)\n", name, z.Offset(), z)
			}
			return nil
		},
	}
}
