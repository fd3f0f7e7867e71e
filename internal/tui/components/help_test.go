package components

import (
	"strings"
	"testing"
)

func TestHelpOverlay_Toggle(t *testing.T) {
	h := NewHelpOverlay()
	if h.Visible() {
		t.Error("overlay should start hidden")
	}
	h.Toggle()
	if !h.Visible() {
		t.Error("overlay should be visible after toggle")
	}
	h.Hide()
	if h.Visible() {
		t.Error("overlay should be hidden after Hide")
	}
}

func TestHelpOverlay_View(t *testing.T) {
	h := NewHelpOverlay()
	if h.View() != "" {
		t.Error("hidden overlay should render nothing")
	}

	h.Toggle()
	view := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "Swiping", "Like this dish", "Cycle mood"} {
		if !strings.Contains(view, want) {
			t.Errorf("help overlay missing %q", want)
		}
	}
}
