package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/noshapp/nosh/internal/tui/styles"
)

// SearchInput is an inline filter box for list pages.
type SearchInput struct {
	model   textinput.Model
	focused bool
}

// NewSearchInput creates a new SearchInput component.
func NewSearchInput() *SearchInput {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Placeholder = "filter by name or cuisine"
	ti.Prompt = "/ "

	return &SearchInput{model: ti}
}

// Focus gives the input keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	return s.model.Focus()
}

// Blur releases keyboard focus, keeping the query.
func (s *SearchInput) Blur() {
	s.focused = false
	s.model.Blur()
}

// Focused reports whether the input has focus.
func (s *SearchInput) Focused() bool {
	return s.focused
}

// Value returns the current query.
func (s *SearchInput) Value() string {
	return s.model.Value()
}

// Reset clears the query and focus.
func (s *SearchInput) Reset() {
	s.model.SetValue("")
	s.Blur()
}

// Update forwards key events to the underlying textinput.
func (s *SearchInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders the input. An unfocused empty input renders a hint instead.
func (s *SearchInput) View() string {
	if !s.focused && s.model.Value() == "" {
		return styles.MutedTextStyle.Render("press / to filter")
	}
	return s.model.View()
}
