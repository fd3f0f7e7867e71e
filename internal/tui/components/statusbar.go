// Package components provides reusable TUI components for nosh.
package components

import (
	"fmt"
	"strings"

	"github.com/noshapp/nosh/internal/tui/styles"
)

// ShortcutDef is one key hint shown in the status bar.
type ShortcutDef struct {
	Key  string
	Desc string
}

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	XP            int
	Level         string
	Likes         int
	Mood          string
	Diet          []string
	Message       string // Optional transient message
	ShowShortcuts bool
	Shortcuts     []ShortcutDef
}

// StatusBar displays the diner's progress and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			Mood:          "Any",
			ShowShortcuts: true,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetMessage sets a transient message shown in place of the shortcuts.
func (s *StatusBar) SetMessage(msg string) {
	s.data.Message = msg
}

// SetWidth sets the render width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	parts := []string{
		styles.HighlightStyle.Render(fmt.Sprintf("%d XP", s.data.XP)),
		styles.StatusBarStyle.Render(s.data.Level),
		styles.StatusBarStyle.Render(fmt.Sprintf("%d likes", s.data.Likes)),
		styles.StatusBarStyle.Render("mood: " + s.data.Mood),
	}
	if len(s.data.Diet) > 0 {
		parts = append(parts, styles.TagStyle.Render("diet: "+strings.Join(s.data.Diet, ",")))
	}
	line := strings.Join(parts, styles.MutedTextStyle.Render(" │ "))

	if s.data.Message != "" {
		return line + "\n" + styles.SuccessTextStyle.Render(s.data.Message)
	}
	if s.data.ShowShortcuts && len(s.data.Shortcuts) > 0 {
		hints := make([]string, 0, len(s.data.Shortcuts))
		for _, sc := range s.data.Shortcuts {
			hints = append(hints,
				styles.ShortcutKeyStyle.Render(sc.Key)+styles.ShortcutDescStyle.Render(" "+sc.Desc))
		}
		return line + "\n" + strings.Join(hints, "  ")
	}
	return line
}
