package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/preset"
)

// presetsCommand lists the built-in presets.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, presetTable(c.Catalog.All()))
			printNewline()
			printNextStep("Render one", appName+" render <preset>")
			return nil
		},
	}
}

// familiesCommand lists the layout families with their default parameters.
func (c *CLI) familiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List layout families and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, familyTable(layout.Families()))
			return nil
		},
	}
}

func presetTable(presets []preset.Preset) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{p.Name, string(p.Family), formatParams(p.Params), p.Summary})
	}
	return newTable("Preset", "Family", "Params", "Summary").Rows(rows...).Render()
}

func familyTable(families []layout.Family) string {
	rows := make([][]string, 0, len(families))
	for _, f := range families {
		p := layout.DefaultParams(f)
		waste, reserves, texts := f.Supports()
		rows = append(rows, []string{
			string(f),
			strconv.Itoa(p.Rows),
			strconv.Itoa(p.Reserves),
			flags(map[string]bool{"waste": waste, "reserves": reserves, "texts": texts}),
			f.Summary(),
		})
	}
	return newTable("Family", "Rows", "Reserves", "Supports", "Arrangement").Rows(rows...).Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHeader
			case col == 0:
				return StyleHighlight
			}
			return StyleDim
		})
}

// formatParams renders preset overrides as an expression argument list.
func formatParams(params map[string]any) string {
	if len(params) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return strings.Join(parts, ", ")
}

func flags(set map[string]bool) string {
	var on []string
	for _, name := range []string{"waste", "reserves", "texts"} {
		if set[name] {
			on = append(on, name)
		}
	}
	if len(on) == 0 {
		return "-"
	}
	return strings.Join(on, ", ")
}
