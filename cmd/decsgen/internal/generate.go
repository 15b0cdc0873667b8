package internal

import (
	"fmt"
	"path/filepath"

	"github.com/donerkebap13/decsgen/internal/platform"
	"github.com/donerkebap13/decsgen/internal/script"
	"github.com/donerkebap13/decsgen/x/cmake"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (g *generator) runGenerate(cmd *cobra.Command, args []string) error {
	platforms, err := platform.Select(g.allPlatforms, g.goos)
	if err != nil {
		return err
	}

	files, err := script.Plan(&g.opts, platforms)
	if err != nil {
		return err
	}
	g.logger.Debug("Scripts planned",
		zap.Int("files", len(files)),
		zap.String("platforms", platform.Names(platforms)))

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	if dryRun {
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f.Path)
		}
		return nil
	}

	if err := script.Write(files); err != nil {
		return err
	}
	for _, f := range files {
		g.logger.Info("Wrote script",
			zap.String("path", f.Path),
			zap.Stringer("platform", f.Platform))
	}

	if _, ok := cmake.LookPath(); !ok && !g.allPlatforms {
		g.logger.Warn("cmake not found in PATH, the generated scripts will fail until it is installed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d scripts in %s\n",
		len(files), filepath.Join(g.opts.Root, script.ScriptsDir))
	return nil
}
