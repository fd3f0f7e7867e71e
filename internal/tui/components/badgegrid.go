package components

import (
	"fmt"
	"strings"

	"github.com/noshapp/nosh/internal/tui/styles"
)

// BadgeEntry is one badge with its earn state.
type BadgeEntry struct {
	Name    string
	Desc    string
	Earned  bool
	Current int
	Target  int
}

// BadgeGrid lists every badge and how close the diner is to earning it.
type BadgeGrid struct {
	entries []BadgeEntry
	width   int
}

// NewBadgeGrid creates a new BadgeGrid component.
func NewBadgeGrid() *BadgeGrid {
	return &BadgeGrid{width: 48}
}

// SetEntries sets the badges to display.
func (g *BadgeGrid) SetEntries(entries []BadgeEntry) {
	g.entries = entries
}

// SetWidth sets the render width.
func (g *BadgeGrid) SetWidth(width int) {
	if width > 0 {
		g.width = width
	}
}

// View renders the grid.
func (g *BadgeGrid) View() string {
	if len(g.entries) == 0 {
		return styles.MutedTextStyle.Render("No badges yet.")
	}

	var b strings.Builder
	for _, e := range g.entries {
		icon := styles.MutedTextStyle.Render("○")
		if e.Earned {
			icon = styles.IconBadge
		}
		name := styles.CardTitleStyle.Render(e.Name)
		if !e.Earned {
			name = styles.MutedTextStyle.Render(e.Name)
		}
		b.WriteString(icon + " " + name)
		if e.Target > 0 && !e.Earned {
			b.WriteString(styles.ProgressCountStyle.Render(
				fmt.Sprintf("  %d/%d", e.Current, e.Target)))
		}
		b.WriteString("\n")
		b.WriteString("  " + styles.MutedTextStyle.Render(e.Desc) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
