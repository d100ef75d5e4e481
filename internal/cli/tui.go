package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slidegeom/slidegeom/pkg/diagram"
	"github.com/slidegeom/slidegeom/pkg/errors"
	"github.com/slidegeom/slidegeom/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// VariantListModel - Interactive variant selection
// =============================================================================

// VariantListModel is the bubbletea model for interactive variant selection.
type VariantListModel struct {
	Type     diagram.Type
	Variants []diagram.Variant
	Cursor   int
	Selected diagram.Variant
	Done     bool
}

// NewVariantListModel creates a variant list model for the given diagram type.
func NewVariantListModel(t diagram.Type, variants []diagram.Variant) VariantListModel {
	return VariantListModel{
		Type:     t,
		Variants: variants,
	}
}

func (m VariantListModel) Init() tea.Cmd {
	return nil
}

func (m VariantListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Variants)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Variants[m.Cursor]
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m VariantListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Select a %s layout variant", m.Type)))
	b.WriteString("\n\n")

	for i, v := range m.Variants {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = listSelectedStyle.Render("> ")
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(string(v)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move · enter select · q quit"))
	b.WriteString("\n")

	return b.String()
}

// pickVariant runs the interactive variant picker for the given diagram
// type. The second return value is false if the user quit without
// selecting.
func pickVariant(t diagram.Type) (diagram.Variant, bool, error) {
	variants := layout.Variants(t)
	if len(variants) == 0 {
		return "", false, errors.New(errors.ErrCodeUnknownDiagramType, "unknown diagram type: %s", t)
	}

	program := tea.NewProgram(NewVariantListModel(t, variants))
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("variant picker: %w", err)
	}

	m, ok := final.(VariantListModel)
	if !ok || !m.Done {
		return "", false, nil
	}
	return m.Selected, true, nil
}
