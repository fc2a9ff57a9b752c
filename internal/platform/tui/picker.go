package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff00"))
	pickerSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	pickerItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// PickerModel lets the user choose which variant to play.
type PickerModel struct {
	variants []registry.GameInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected string
	quitting bool
}

// NewPickerModel creates a picker over the registered variants.
func NewPickerModel(width, height int) PickerModel {
	return PickerModel{
		variants: registry.List(),
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.variants) > 0 {
			m.selected = m.variants[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the variant list.
func (m PickerModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a variant:", m.width))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		line := fmt.Sprintf("  %-10s %s", v.ID, v.Title)
		style := pickerItemStyle
		if i == m.cursor {
			line = fmt.Sprintf("> %-10s %s", v.ID, v.Title)
			style = pickerSelectedStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m PickerModel) Selected() string {
	return m.selected
}

// centerText pads text on the left so it appears centred in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPicker shows the picker and returns the chosen variant ID.
// An empty ID means the user quit.
func RunPicker(width, height int) (string, error) {
	p := tea.NewProgram(NewPickerModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
