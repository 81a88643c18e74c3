package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/preset"
	"github.com/matzehuels/tableau/pkg/render/term"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// browseCommand opens the interactive preset browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse presets with a live terminal preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewPresetListModel(c.Catalog.All())
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "browse")
			}
			if m, ok := final.(PresetListModel); ok && m.Selected != nil {
				printNextStep("Render", fmt.Sprintf("%s render %s", appName, m.Selected.Name))
			}
			return nil
		},
	}
}

// =============================================================================
// PresetListModel - Interactive preset selection
// =============================================================================

// PresetListModel is the bubbletea model for browsing presets. The preview
// of the highlighted preset is recomputed whenever the cursor moves.
type PresetListModel struct {
	Presets  []preset.Preset
	Cursor   int
	Selected *preset.Preset
	Height   int
	Offset   int

	preview string
}

// NewPresetListModel creates a new preset list model.
func NewPresetListModel(presets []preset.Preset) PresetListModel {
	m := PresetListModel{Presets: presets, Height: 15}
	m.preview = m.renderPreview()
	return m
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
				m.preview = m.renderPreview()
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
				m.preview = m.renderPreview()
			}
		case "enter":
			if len(m.Presets) == 0 {
				return m, nil
			}
			p := m.Presets[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Presets"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Presets))
	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		p := m.Presets[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		list.WriteString(style.Render(fmt.Sprintf("%s%-20s", cursor, p.Name)))
		list.WriteString(" " + listDimStyle.Render(string(p.Family)))
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", previewFrameStyle.Render(m.preview)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Presets))))

	return b.String()
}

// renderPreview lays out the highlighted preset for the terminal surface.
func (m PresetListModel) renderPreview() string {
	if len(m.Presets) == 0 {
		return listDimStyle.Render("no presets")
	}
	p := m.Presets[m.Cursor]
	f, params, err := p.Resolve()
	if err == nil {
		var res *layout.Result
		if res, err = layout.Compute(f, params); err == nil {
			var out string
			if out, err = term.Preview(res); err == nil {
				return out + "\n" + listDimStyle.Render(p.Summary)
			}
		}
	}
	return StyleWarning.Render(errors.UserMessage(err))
}
