package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/pipeline"
)

// renderFlags holds the rendering flags shared by render and visualize.
type renderFlags struct {
	formats    string
	output     string
	background string
	stretch    bool
	overlay    string
	regions    bool
	scale      float64
	talon      int
	noCache    bool
	refresh    bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, graphviz (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&f.background, "background", "", "background image, tiled unless --stretch")
	cmd.Flags().BoolVar(&f.stretch, "stretch", false, "stretch the background image over the table")
	cmd.Flags().StringVar(&f.overlay, "overlay", "", "image centered over the table")
	cmd.Flags().BoolVar(&f.regions, "regions", false, "outline drop regions")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG pixels per layout unit (default from config)")
	cmd.Flags().IntVar(&f.talon, "talon", -1, "card count shown on the talon label")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
}

// apply copies the flags onto pipeline options, keeping configured
// defaults for anything unset.
func (f *renderFlags) apply(opts *pipeline.Options) {
	if formats := parseFormats(f.formats); formats != nil {
		opts.Formats = formats
	}
	if f.scale > 0 {
		opts.Scale = f.scale
	}
	opts.Background = f.background
	opts.Stretch = f.stretch
	opts.Overlay = f.overlay
	opts.Regions = f.regions
	opts.Refresh = f.refresh
	if f.talon >= 0 {
		opts.Counts = map[layout.Kind]int{layout.KindTalon: f.talon}
	}
}

// renderCommand creates the render command: expression to drawn output.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <expr>",
		Short: "Render a layout to SVG, PNG, PDF or Graphviz",
		Long: `Render a layout to one or more output formats.

  tableau render klondike
  tableau render spider -f svg,png --background felt.jpg
  tableau render "freecell(reserves=6)" -f pdf -o freecell.pdf

Output files are named after the expression unless -o is given. Layouts and
artifacts are cached locally for faster subsequent runs.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeExpr,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(args[0])
			flags.apply(&opts)
			return c.runRender(cmd.Context(), opts, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, flags renderFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.Expr))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths, err := writeArtifacts(result, basePath(flags.output, slug(opts.Expr)), flags.output)
	if err != nil {
		return err
	}
	prog.done("rendered", "run", result.RunID, "files", len(paths))

	printSuccess("Rendered %s", StyleHighlight.Render(string(result.Family)))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Piles, result.Layout.Width, result.Layout.Height, result.CacheInfo.RenderHit)
	printKeyValue("run", result.RunID)
	return nil
}

// writeArtifacts writes each artifact to base.<ext>. A single artifact goes
// to output verbatim when output is set.
func writeArtifacts(result *pipeline.Result, base, output string) ([]string, error) {
	var paths []string
	for _, format := range pipeline.ValidFormats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + pipeline.Extension(format)
		if len(result.Artifacts) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write output %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
