package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "visualize <layout.json>",
		Short: "Render a previously computed layout",
		Long: `Render a previously computed layout.

The visualize command takes a layout.json file (produced by 'layout' or
'render -f json') and renders it. The layout contains all positioning
information, so this step is purely about drawing.

Use 'render' as a shortcut to go directly from an expression to output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions("")
			flags.apply(&opts)
			return c.runVisualize(cmd.Context(), args[0], opts, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, flags renderFlags) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Visualize(ctx, data, opts)
	if err != nil {
		return fmt.Errorf("visualize %s: %w", input, err)
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))
	base = strings.TrimSuffix(base, ".layout")
	paths, err := writeArtifacts(result, basePath(flags.output, base), flags.output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(string(result.Family)))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Piles, result.Layout.Width, result.Layout.Height, result.CacheInfo.RenderHit)
	return nil
}
