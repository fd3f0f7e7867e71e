// Package tui provides the terminal user interface for nosh.
package tui

import (
	"github.com/noshapp/nosh/internal/recommend"
)

// Message types for TUI state updates.

// BadgesAwardedMsg is sent when a like unlocks new badges.
type BadgesAwardedMsg struct {
	Badges []string
}

// RecommendationsMsg carries the result of a ranking pass.
type RecommendationsMsg struct {
	Scored []recommend.Scored
	Err    error
}

// SessionSavedMsg reports the outcome of persisting the session.
type SessionSavedMsg struct {
	Err error
}

// clearMessageMsg expires the transient status bar message.
type clearMessageMsg struct{}
