package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noshapp/nosh/internal/tui/styles"
)

// NoteInput is a wrapper around the bubbles textinput component used for
// attaching a note to a dish.
type NoteInput struct {
	model   textinput.Model
	label   string
	visible bool
}

// NewNoteInput creates a new NoteInput component.
func NewNoteInput() *NoteInput {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Placeholder = "e.g. order extra scallions"

	return &NoteInput{model: ti}
}

// Show opens the input for the named dish, pre-filled with the existing note.
func (n *NoteInput) Show(dish, existing string) tea.Cmd {
	n.label = dish
	n.visible = true
	n.model.SetValue(existing)
	n.model.CursorEnd()
	return n.model.Focus()
}

// Hide closes the input.
func (n *NoteInput) Hide() {
	n.visible = false
	n.model.Blur()
}

// Visible reports whether the input is open.
func (n *NoteInput) Visible() bool {
	return n.visible
}

// Value returns the current text.
func (n *NoteInput) Value() string {
	return n.model.Value()
}

// Update forwards key events to the underlying textinput.
func (n *NoteInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	n.model, cmd = n.model.Update(msg)
	return cmd
}

// View renders the input.
func (n *NoteInput) View() string {
	if !n.visible {
		return ""
	}
	title := styles.OverlayTitleStyle.Render("Note for " + n.label)
	hint := styles.MutedTextStyle.Render("enter to save, esc to cancel")
	return styles.OverlayStyle.Render(title + "\n\n" + n.model.View() + "\n" + hint)
}
