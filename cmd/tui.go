package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ianprime0509/reading/pkg/plan"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse plans interactively",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the tui requires an interactive terminal")
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	m, err := newTUIModel(st)
	if err != nil {
		return err
	}
	if len(m.plans) == 0 {
		return fmt.Errorf("no plans found; import one with 'reading add'")
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

type tuiKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func newTUIKeyMap() tuiKeyMap {
	return tuiKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next entry"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous entry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	tuiTitleStyle    = lipgloss.NewStyle().Bold(true)
	tuiSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tuiDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tuiPreviewStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

type planItem struct {
	name    string
	entry   int
	entries int
}

type tuiModel struct {
	store    *plan.Store
	plans    []planItem
	selected int
	preview  string
	keys     tuiKeyMap
	err      error
}

func newTUIModel(st *plan.Store) (*tuiModel, error) {
	m := &tuiModel{store: st, keys: newTUIKeyMap()}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// reload re-derives the plan list and cursor positions from disk.
func (m *tuiModel) reload() error {
	names, err := m.store.Plans()
	if err != nil {
		return err
	}
	m.plans = m.plans[:0]
	for _, name := range names {
		entries, err := m.store.CountEntries(name)
		if err != nil {
			return err
		}
		entry, err := m.store.Entry(name)
		if err != nil {
			return err
		}
		m.plans = append(m.plans, planItem{name: name, entry: entry, entries: entries})
	}
	if m.selected >= len(m.plans) {
		m.selected = len(m.plans) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.refreshPreview()
	return nil
}

func (m *tuiModel) refreshPreview() {
	m.preview = ""
	if len(m.plans) == 0 {
		return
	}
	p := m.plans[m.selected]
	if p.entry > p.entries {
		return
	}
	var buf bytes.Buffer
	if err := m.store.Show(&buf, p.name, 1); err != nil {
		m.err = err
		return
	}
	m.preview = strings.TrimRight(buf.String(), "\n")
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.refreshPreview()
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.plans)-1 {
			m.selected++
			m.refreshPreview()
		}
	case key.Matches(keyMsg, m.keys.Next):
		if len(m.plans) > 0 {
			if _, err := m.store.Next(m.plans[m.selected].name); err != nil {
				m.err = err
				return m, nil
			}
			m.err = m.reload()
		}
	case key.Matches(keyMsg, m.keys.Prev):
		if len(m.plans) > 0 {
			if _, err := m.store.Previous(m.plans[m.selected].name); err != nil {
				m.err = err
				return m, nil
			}
			m.err = m.reload()
		}
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(tuiTitleStyle.Render("Reading plans"))
	b.WriteString("\n\n")
	for i, p := range m.plans {
		line := fmt.Sprintf("%s (%d/%d)", p.name, p.entry, p.entries)
		if p.entry > p.entries {
			line = fmt.Sprintf("%s (end of plan)", p.name)
		}
		if i == m.selected {
			b.WriteString(tuiSelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.preview != "" {
		b.WriteString("\n")
		b.WriteString(tuiPreviewStyle.Render(m.preview))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.err.Error())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("j/k: select • n: next entry • p: previous entry • q: quit"))
	b.WriteString("\n")
	return b.String()
}
