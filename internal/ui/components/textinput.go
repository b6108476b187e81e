package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexi/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Lexi styling.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and input field.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Label == "" {
		return view
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label)
	return label + "\n" + view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Focus focuses the input and returns the blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// SetValue replaces the input contents.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}
