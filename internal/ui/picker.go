package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trr/internal/domain"
	"trr/internal/ports"
)

var pickerTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("62")).
	Padding(0, 1)

// workspaceItem implements list.Item and list.DefaultItem
type workspaceItem struct {
	index     int // position in the original slice
	workspace domain.Workspace
}

// FilterValue implements list.Item
func (i workspaceItem) FilterValue() string {
	return i.workspace.Branch
}

// Title implements list.DefaultItem
func (i workspaceItem) Title() string {
	return i.workspace.Branch
}

// Description implements list.DefaultItem
func (i workspaceItem) Description() string {
	return "created " + i.workspace.CreatedAt.Format("2006-01-02 15:04:05")
}

// pickerModel is the Bubble Tea model for workspace selection
type pickerModel struct {
	list    list.Model
	choice  int
	aborted bool
}

// Init implements tea.Model
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// While the filter input is active the list owns the keys
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(workspaceItem); ok {
				m.choice = item.index
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "esc":
			// Esc clears an applied filter before it aborts
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m pickerModel) View() string {
	return m.list.View()
}

// Picker implements ports.WorkspacePicker with a filterable Bubble Tea
// list
type Picker struct{}

// Compile-time interface verification
var _ ports.WorkspacePicker = (*Picker)(nil)

// NewPicker creates a Picker
func NewPicker() *Picker {
	return &Picker{}
}

// Pick presents the workspaces and returns the index of the chosen one.
// Aborting the selection returns domain.ErrSelectionAborted.
func (p *Picker) Pick(workspaces []domain.Workspace) (int, error) {
	items := make([]list.Item, len(workspaces))
	for i, workspace := range workspaces {
		items[i] = workspaceItem{index: i, workspace: workspace}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Select workspace to delete"
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	model := pickerModel{list: l, choice: -1}
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return 0, fmt.Errorf("selection failed: %w", err)
	}

	result, ok := final.(pickerModel)
	if !ok || result.aborted || result.choice < 0 {
		return 0, domain.ErrSelectionAborted
	}
	return result.choice, nil
}
