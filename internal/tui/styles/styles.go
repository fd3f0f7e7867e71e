// Package styles provides Lip Gloss styles for the nosh TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#F97316") // Orange
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// TabStyle is for inactive page tabs.
	TabStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// ActiveTabStyle is for the selected page tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Dish card styles.
var (
	// CardStyle frames the dish being judged.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// CardTitleStyle is the dish name.
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	// CardLabelStyle is for field labels on the card.
	CardLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// CardValueStyle is for field values on the card.
	CardValueStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// TagStyle renders a dietary or mood tag pill.
	TagStyle = lipgloss.NewStyle().
			Foreground(Secondary)
)

// Verdict icons shown after a swipe.
var (
	IconLike = lipgloss.NewStyle().
			Foreground(Success).
			Render("♥")

	IconPass = lipgloss.NewStyle().
			Foreground(Error).
			Render("✗")

	IconBadge = lipgloss.NewStyle().
			Foreground(Warning).
			Render("★")
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Progress bar styles.
var (
	ProgressFilledStyle = lipgloss.NewStyle().
				Foreground(Success).
				Bold(true)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	ProgressCountStyle = lipgloss.NewStyle().
				Foreground(Secondary)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// SuccessTextStyle is for positive feedback.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// HighlightStyle is for emphasized values.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(Muted)
)

// Overlay styles.
var (
	// OverlayStyle frames modal overlays like help.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// OverlayTitleStyle is the overlay heading.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)
)
