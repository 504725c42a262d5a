package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/icr2-tools/trackscan/internal/core/domain"
	"github.com/icr2-tools/trackscan/pkg/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [track]",
	Short: "Interactive texture browser",
	Long: `Browse a track's textures interactively.

Navigation:
- j / ↓ : Move Down
- k / ↑ : Move Up
- tab   : Switch section (referenced / unused / missing)
- q     : Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	track, err := resolveTrack(args)
	if err != nil {
		return err
	}

	svc, err := newAnalyzer(track)
	if err != nil {
		return err
	}

	analysis, err := svc.Execute(ctx)
	if err != nil {
		return err
	}

	if len(analysis.Referenced)+len(analysis.Unused)+len(analysis.Missing) == 0 {
		fmt.Println(ui.FormatWarning("No textures found for " + track))
		return nil
	}

	p := tea.NewProgram(newExploreModel(analysis))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// --- TUI Model ---

var exploreSections = []string{"Referenced", "Unused", "Missing"}

type exploreKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Section key.Binding
	Quit    key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Section, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Section, k.Quit}}
}

var exploreKeys = exploreKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Section: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "section")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type exploreModel struct {
	analysis *domain.Analysis
	section  int
	cursor   int
	help     help.Model
}

func newExploreModel(a *domain.Analysis) exploreModel {
	return exploreModel{
		analysis: a,
		help:     help.New(),
	}
}

func (m exploreModel) rows() []string {
	switch m.section {
	case 1:
		return m.analysis.Unused
	case 2:
		return m.analysis.Missing
	default:
		rows := make([]string, len(m.analysis.Referenced))
		for i, t := range m.analysis.Referenced {
			if t.Err != nil {
				rows[i] = fmt.Sprintf("%-14s unreadable", t.Name)
				continue
			}
			rows[i] = fmt.Sprintf("%-14s %4dx%-4d %s", t.Name, t.Width, t.Height, formatBytes(t.Size))
		}
		return rows
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, exploreKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, exploreKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, exploreKeys.Down):
			if m.cursor < len(m.rows())-1 {
				m.cursor++
			}

		case key.Matches(msg, exploreKeys.Section):
			m.section = (m.section + 1) % len(exploreSections)
			m.cursor = 0
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(ui.FormatTitle(ui.IconTrack+" "+m.analysis.Track) + "\n\n")

	for i, name := range exploreSections {
		label := fmt.Sprintf(" %s (%d) ", name, len(sectionRowsFor(m.analysis, i)))
		if i == m.section {
			b.WriteString(ui.StylePrimary.Render(label))
		} else {
			b.WriteString(ui.StyleMuted.Render(label))
		}
	}
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(ui.FormatMuted("  nothing here") + "\n")
	}
	for i, row := range rows {
		if i == m.cursor {
			b.WriteString(ui.StyleAccent.Render("> "+row) + "\n")
		} else {
			b.WriteString("  " + row + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(exploreKeys) + "\n")
	return b.String()
}

func sectionRowsFor(a *domain.Analysis, section int) []string {
	switch section {
	case 1:
		return a.Unused
	case 2:
		return a.Missing
	default:
		names := make([]string, len(a.Referenced))
		for i, t := range a.Referenced {
			names[i] = t.Name
		}
		return names
	}
}
