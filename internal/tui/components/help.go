package components

import (
	"strings"

	"github.com/noshapp/nosh/internal/tui/styles"
)

// Shortcut represents a keyboard shortcut.
type Shortcut struct {
	Key  string
	Desc string
}

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// HelpOverlay displays keyboard shortcuts and help information.
type HelpOverlay struct {
	visible bool
	width   int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a new HelpOverlay component.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width: 52,
		groups: []ShortcutGroup{
			{
				Title: "Swiping",
				Shortcuts: []Shortcut{
					{"→/l", "Like this dish"},
					{"←/h", "Pass on this dish"},
					{"s", "Surprise me"},
					{"n", "Add a note"},
				},
			},
			{
				Title: "Filters",
				Shortcuts: []Shortcut{
					{"m", "Cycle mood"},
					{"d", "Cycle dietary filter"},
					{"c", "Clear filters"},
				},
			},
			{
				Title: "Favorites",
				Shortcuts: []Shortcut{
					{"/", "Filter the list"},
					{"o", "Cycle sort order"},
					{"x", "Remove from favorites"},
				},
			},
			{
				Title: "Pages",
				Shortcuts: []Shortcut{
					{"tab", "Next page"},
					{"1-5", "Jump to page"},
					{"r", "Refresh recommendations"},
				},
			},
			{
				Title: "General",
				Shortcuts: []Shortcut{
					{"?", "Toggle help"},
					{"q", "Quit"},
					{"Esc", "Close overlay"},
				},
			},
		},
	}
}

// Toggle flips visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Visible reports whether the overlay is shown.
func (h *HelpOverlay) Visible() bool {
	return h.visible
}

// View renders the overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.OverlayTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, g := range h.groups {
		b.WriteString("\n")
		b.WriteString(styles.HighlightStyle.Render(g.Title))
		b.WriteString("\n")
		for _, sc := range g.Shortcuts {
			key := styles.ShortcutKeyStyle.Render(padRight(sc.Key, 6))
			b.WriteString("  " + key + " " + sc.Desc + "\n")
		}
	}
	return styles.OverlayStyle.Width(h.width).Render(strings.TrimRight(b.String(), "\n"))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
