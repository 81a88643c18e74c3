package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/pipeline"
)

// layoutCommand creates the layout command for computing pile positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "layout <expr>",
		Short: "Compute a layout and print it as JSON",
		Long: `Compute a layout and print it as JSON.

The expression names a preset or family, optionally followed by parameter
overrides in parentheses:

  tableau layout klondike
  tableau layout "freecell(reserves=6, !texts)"
  tableau layout "generic(rows=5, height=3, waste)"

The JSON document can be rendered later with 'visualize'.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeExpr,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runLayout computes the layout and writes its JSON document.
func (c *CLI) runLayout(ctx context.Context, expr, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := c.pipelineOptions(expr)
	opts.Formats = []string{pipeline.FormatJSON}
	opts.Refresh = refresh

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	data := result.Artifacts[pipeline.FormatJSON]

	if output == "" {
		_, err := stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(result.Stats.Piles, result.Layout.Width, result.Layout.Height, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+output)
	return nil
}
