package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"difind.dev/pkg/difind/internal/model"
)

var (
	browserTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	malformedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// TUI renders reports interactively with Bubble Tea. Non-interactive
// methods fall back to the same plain tables SimpleUI prints.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReports prints every report's collections.
func (t *TUI) DisplayReports(ctx context.Context, reports []model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := renderReport(t.output, rep); err != nil {
			return err
		}
	}

	return nil
}

// DisplayVerification prints the malformed nodes of every report.
func (t *TUI) DisplayVerification(ctx context.Context, reports []model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := renderVerification(t.output, rep); err != nil {
			return err
		}
	}

	return nil
}

// Browse opens an interactive, filterable list over every collected node.
func (t *TUI) Browse(ctx context.Context, reports []model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	items := make([]list.Item, 0)
	title := "difind"

	for _, rep := range reports {
		title = fmt.Sprintf("difind — %s", rep.Graph)

		for _, group := range collectionGroups {
			for _, e := range group.entries(rep) {
				items = append(items, nodeItem{collection: group.label, entry: e})
			}
		}
	}

	browser := newBrowseModel(title, items)

	program := tea.NewProgram(browser, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// nodeItem adapts one report entry to the bubbles list.
type nodeItem struct {
	collection string
	entry      model.Entry
}

// Title returns the entry's display name.
func (i nodeItem) Title() string {
	name := i.entry.Name
	if name == "" {
		name = "(unnamed)"
	}

	if !i.entry.Verified {
		return malformedStyle.Render(name)
	}

	return name
}

// Description returns the collection, tag and detail line.
func (i nodeItem) Description() string {
	tag := i.entry.Tag
	if tag == "" {
		tag = "untagged"
	}

	desc := fmt.Sprintf("%s · %s", i.collection, tag)
	if i.entry.Detail != "" {
		desc += " · " + i.entry.Detail
	}

	if !i.entry.Verified {
		desc += " · malformed"
	}

	return desc
}

// FilterValue lets the list filter on name and tag.
func (i nodeItem) FilterValue() string {
	return i.entry.Name + " " + i.entry.Tag
}

// browseModel is the Bubble Tea model for the node browser.
type browseModel struct {
	list list.Model
}

func newBrowseModel(title string, items []list.Item) browseModel {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.Styles.Title = browserTitleStyle

	return browseModel{list: l}
}

// Init implements tea.Model.
func (m browseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !m.list.SettingFilter()) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m browseModel) View() string {
	return m.list.View()
}
