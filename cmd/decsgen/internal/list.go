package internal

import (
	"fmt"
	"text/tabwriter"

	"github.com/donerkebap13/decsgen/internal/platform"
	"github.com/donerkebap13/decsgen/internal/script"
	"github.com/spf13/cobra"
)

func newListCmd(g *generator) *cobra.Command {
	return &cobra.Command{
		Use:   "list [platform...]",
		Short: "List the scripts that would be generated",
		Long: `List prints every script decsgen would write together with the CMake call
it runs. Platforms may be named explicitly (win32, darwin, linux); otherwise
the same selection rules as the root command apply.`,
		RunE: g.runList,
	}
}

func (g *generator) runList(cmd *cobra.Command, args []string) error {
	var platforms []platform.Platform
	if len(args) > 0 {
		for _, arg := range args {
			p, err := platform.Parse(arg)
			if err != nil {
				return err
			}
			platforms = append(platforms, p)
		}
	} else {
		var err error
		platforms, err = platform.Select(g.allPlatforms, g.goos)
		if err != nil {
			return err
		}
	}

	m := script.Matrix{Platforms: platforms, Configurations: script.Configurations}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, cell := range m.Combinations() {
		call := script.CMakeCall(&g.opts, cell.Platform, cell.Configuration)
		for _, phase := range script.Phases {
			name := script.ScriptName(cell.Platform, cell.Configuration, phase)
			fmt.Fprintf(w, "%s\t%s\t%s\n", cell.Platform, name, call)
		}
	}
	return w.Flush()
}
